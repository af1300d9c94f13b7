package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/sustainhire/internship-intake/internal/services"
	"github.com/sustainhire/internship-intake/internal/utils"
)

const (
	resumeField    = "resume"
	successMessage = "Application submitted successfully!"

	// room for the text fields on top of the resume itself
	formOverheadBytes = 1 << 20
	sniffBytes        = 3072
)

type ApplicationHandler struct {
	svc          services.ApplicationService
	maxBodyBytes int64
}

func NewApplicationHandler(svc services.ApplicationService, maxResumeBytes int64) *ApplicationHandler {
	if maxResumeBytes <= 0 {
		maxResumeBytes = services.DefaultMaxResumeBytes
	}
	return &ApplicationHandler{svc: svc, maxBodyBytes: maxResumeBytes + formOverheadBytes}
}

type ApplyResponse struct {
	Message     string    `json:"message"`
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Apply handles POST /api/internship/apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	const op = "ApplicationHandler.Apply"

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	fields, err := h.readFields(c)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "request body too large", err))
			return
		}
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "malformed request body", err))
		return
	}

	resume, closeResume, err := h.openResume(c)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unreadable resume file", err))
		return
	}
	defer closeResume()

	app, err := h.svc.Submit(c.Request.Context(), services.NewCandidate(fields), resume)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ApplyResponse{
		Message:     successMessage,
		ID:          app.ID,
		SubmittedAt: app.SubmittedAt,
	})
}

func (h *ApplicationHandler) readFields(c *gin.Context) (map[string]any, error) {
	switch c.ContentType() {
	case gin.MIMEJSON:
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		fields := map[string]any{}
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return services.FieldsFromForm(form.Value), nil
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return services.FieldsFromForm(c.Request.PostForm), nil
	}
}

// openResume returns nil when the request carries no resume part.
func (h *ApplicationHandler) openResume(c *gin.Context) (*services.ResumeUpload, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	fh, err := c.FormFile(resumeField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	file, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	body, contentType, err := sniff(file)
	if err != nil {
		_ = file.Close()
		return nil, noop, err
	}

	return &services.ResumeUpload{
		FileName:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        body,
	}, func() { _ = file.Close() }, nil
}

// sniff detects the content type from the first bytes and hands back a reader
// that still yields the whole file.
func sniff(f multipart.File) (io.Reader, string, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]
	return io.MultiReader(bytes.NewReader(head), f), mimetype.Detect(head).String(), nil
}
