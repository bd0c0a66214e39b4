package handler

import (
	"net/http"

	"github.com/nadeuri-dev/nadeuri/shared/api"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	"github.com/nadeuri-dev/nadeuri/shared/utils"
)

const defaultPage int = 1

func (h *Handler) RegisterBoard(w http.ResponseWriter, r *http.Request) {
	body, image, cleanup, err := parseMultipartRequest[api.CreateBoardRequest](w, r, h)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer cleanup()

	data, err := boardData(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.board.Register(r.Context(), data, image); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := boardIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Read(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, board)
}

// GetBoards lists active boards, filtered by title or author when keyword is set.
func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	page, err := parseIntQuery(r, "page", defaultPage)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	size, err := parseIntQuery(r, "size", h.cfg.Public.Board.DefaultPageSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	pageReq := domain.PageRequest{Page: page, Size: size}

	var resp *api.BoardPageResponse
	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		resp, err = h.board.PageSearch(r.Context(), keyword, pageReq)
	} else {
		resp, err = h.board.Page(r.Context(), pageReq)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, resp)
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := boardIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	body, image, cleanup, err := parseMultipartRequest[api.UpdateBoardRequest](w, r, h)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer cleanup()

	data, err := boardData(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Update(r.Context(), id, data, image)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.NewBoardResponse(board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := boardIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Delete(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.NewBoardResponse(board))
}
