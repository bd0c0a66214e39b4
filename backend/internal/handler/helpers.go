package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nadeuri-dev/nadeuri/shared/api"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	"github.com/nadeuri-dev/nadeuri/shared/utils"
	"github.com/nadeuri-dev/nadeuri/shared/validation"
)

const (
	requestPart = "request"
	imagePart   = "image"
)

// parseMultipartRequest parses a multipart board submission: the JSON "request"
// part and an optional "image" part. The returned cleanup closes the image and
// must be called once the image is no longer needed.
func parseMultipartRequest[T any](w http.ResponseWriter, r *http.Request, h *Handler) (body T, image *domain.PendingFile, cleanup func(), err error) {
	cleanup = func() {}
	maxImageSize := h.cfg.Public.Media.MaxImageSize

	// Validate request size and parse multipart form
	maxRequestSize := validation.CalculateMaxRequestSize(maxImageSize, 1<<20)
	if err = validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		return
	}

	jsonPart, err := validation.JSONPart(r, requestPart)
	if err != nil {
		return
	}
	defer jsonPart.Close()

	if err = utils.DecodeValidate(jsonPart, &body); err != nil {
		return
	}

	image, err = validation.ImagePart(r, imagePart)
	if err != nil {
		return
	}
	cleanup = func() { validation.CloseImage(image) }

	if image != nil && image.SizeBytes > maxImageSize {
		cleanup()
		cleanup = func() {}
		image = nil
		err = validation.ErrPayloadTooLarge.WithCause(fmt.Errorf("image exceeds the limit of %.0f MB", validation.FormatSizeMB(maxImageSize)))
		return
	}
	return
}

// boardData converts a validated request into service input.
func boardData(body api.CreateBoardRequest) (domain.BoardCreationData, error) {
	category, err := domain.ParseCategory(body.Category)
	if err != nil {
		return domain.BoardCreationData{}, utils.ErrValidation.WithCause(err)
	}
	return domain.BoardCreationData{
		MemberId: body.MemberId,
		Title:    body.BoardTitle,
		Content:  body.BoardContent,
		Category: category,
	}, nil
}

func boardIdParam(r *http.Request) (domain.BoardId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.ErrValidation.WithCause(fmt.Errorf("invalid board id: must be a positive integer"))
	}
	return id, nil
}

// parseIntQuery parses an optional integer query parameter, returning def when absent.
func parseIntQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.ErrValidation.WithCause(fmt.Errorf("invalid %s: must be an integer", name))
	}
	return val, nil
}
