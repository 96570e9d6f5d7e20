// analyses.go handles the JSON analysis endpoint.
//
// POST /api/v1/analyses — multipart upload of a resume PDF plus the job
// description and the selected mode. Processing is synchronous: the response
// carries the generated text or a classified error.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/middleware"
	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
)

// defaultMaxUploadBytes is the upload cap when none is configured (10MB).
const defaultMaxUploadBytes = 10 << 20

// Form field names shared by the HTML form and the JSON API.
const (
	fieldJobDescription = "job_description"
	fieldMode           = "mode"
	fieldResume         = "resume"
)

// uploadError is a problem with the upload itself (wrong type, too large,
// unreadable) rather than with its contents. These never reach the pipeline.
type uploadError struct {
	status int
	kind   string
	msg    string
}

func (e *uploadError) Error() string { return e.msg }

// readUpload reads the resume file from the multipart form.
// A missing file is not an error here: it returns nil data and the
// pipeline reports the missing document in its own terms.
func (h *Handler) readUpload(c *gin.Context) ([]byte, error) {
	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)

	file, header, err := c.Request.FormFile(fieldResume)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &tooLarge):
			return nil, &uploadError{
				status: http.StatusRequestEntityTooLarge,
				kind:   "file_too_large",
				msg:    fmt.Sprintf("The uploaded file is too large. Max size: %dMB.", h.opts.MaxUploadBytes>>20),
			}
		default:
			return nil, &uploadError{
				status: http.StatusBadRequest,
				kind:   "invalid_request",
				msg:    "Could not read the upload. Send a multipart form with the field name 'resume'.",
			}
		}
	}
	defer file.Close()

	// An empty file input still submits a part with no filename.
	if header.Filename == "" && header.Size == 0 {
		return nil, nil
	}

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		return nil, &uploadError{
			status: http.StatusBadRequest,
			kind:   "invalid_file_type",
			msg:    fmt.Sprintf("Unsupported file format '%s'. Only .pdf files are accepted.", ext),
		}
	}

	// Go Pattern: io.ReadAll reads the entire reader into a byte slice.
	// The pdf library needs random access, so it works on the full buffer.
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &uploadError{
			status: http.StatusBadRequest,
			kind:   "read_error",
			msg:    "Failed to read uploaded file",
		}
	}
	return data, nil
}

// CreateAnalysis runs one analysis and returns the result in the requested format.
// POST /api/v1/analyses?format=json|txt|md
func (h *Handler) CreateAnalysis(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	// Validate format before spending any generation quota
	format := c.DefaultQuery("format", formatJSON)
	if !validFormats[format] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "Supported formats: json, txt, md",
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := h.readUpload(c)
	if err != nil {
		var ue *uploadError
		if errors.As(err, &ue) {
			c.JSON(ue.status, models.ErrorResponse{Error: ue.kind, Message: ue.msg, Code: ue.status})
			return
		}
		h.writeError(c, requestID, err)
		return
	}

	res, err := h.Analysis.Run(c.Request.Context(), analysis.Input{
		RequestID:      requestID,
		JobDescription: c.PostForm(fieldJobDescription),
		Document:       data,
		Mode:           models.Mode(c.PostForm(fieldMode)),
	})
	if err != nil {
		h.writeError(c, requestID, err)
		return
	}

	// Go Pattern: Switch on the format string — clean and extensible.
	switch format {
	case formatText:
		exportTXT(c, res)
	case formatMarkdown:
		exportMarkdown(c, res, requestID)
	default:
		exportJSON(c, res, requestID)
	}
}

// writeError maps a classified pipeline error onto an HTTP error response.
func (h *Handler) writeError(c *gin.Context, requestID string, err error) {
	status := statusFor(err)
	h.logFailure(requestID, err, status)

	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(h.opts.RetryAfter.Seconds()))))
	}

	c.JSON(status, models.ErrorResponse{
		Error:   string(apperrors.KindOf(err)),
		Message: apperrors.UserMessage(err),
		Code:    status,
	})
}

// logFailure logs a failed analysis with its kind. Server-side failures get
// the error marker; input problems are only worth a warning.
func (h *Handler) logFailure(requestID string, err error, status int) {
	kind := apperrors.KindOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("❌ [%s] Analysis failed (%s): %v", requestID, kind, err)
		return
	}
	log.Printf("⚠️  [%s] Analysis rejected (%s): %v", requestID, kind, err)
}

// statusFor picks the HTTP status for a pipeline error.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindMissingDocument, apperrors.KindMissingJobDescription, apperrors.KindUnknownMode:
		return http.StatusBadRequest
	case apperrors.KindMalformedDocument:
		return http.StatusUnprocessableEntity
	case apperrors.KindServiceExhausted:
		return http.StatusServiceUnavailable
	case apperrors.KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
