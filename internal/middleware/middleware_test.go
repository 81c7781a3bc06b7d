package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code     string              `json:"code"`
		Message  string              `json:"message"`
		Severity string              `json:"severity"`
		Details  map[string][]string `json:"details"`
	} `json:"error"`
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantField  string
	}{
		{name: "not found", err: apperrors.ErrStudentNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrMedicalInfoNotFound), wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "field validation", err: apperrors.NewValidationError("email", "Enter a valid email address."), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed, wantField: "email"},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", apperrors.NewValidationError("", "bad")), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed, wantField: apperrors.NonFieldErrorsKey},
		{name: "internal", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternalServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/students/1/", nil)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Error.Code != string(tc.wantCode) {
				t.Fatalf("body = %+v", body)
			}
			if tc.wantField != "" && len(body.Error.Details[tc.wantField]) == 0 {
				t.Fatalf("details = %v, want %s", body.Error.Details, tc.wantField)
			}
			if tc.wantStatus == http.StatusInternalServerError && strings.Contains(w.Body.String(), "connection refused") {
				t.Fatal("internal error text leaked to client")
			}
		})
	}
}

type sampleRequest struct {
	Name  string  `json:"name" validate:"required,max=5"`
	Email string  `json:"email" validate:"required,email"`
	Born  string  `json:"born" validate:"required,datetime=2006-01-02"`
	Ref   int64   `json:"ref" validate:"required,gt=0"`
	Note  *string `json:"note" validate:"omitempty,max=3"`
}

func (r *sampleRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func bind(t *testing.T, body string, req *sampleRequest) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return BindRequest(c, req)
}

func detailsOf(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation error", err)
	}
	return ce.Details
}

func TestBindRequestValid(t *testing.T) {
	var req sampleRequest
	err := bind(t, `{"name":"  Ann ","email":"a@b.co","born":"2005-04-01","ref":1}`, &req)
	if err != nil {
		t.Fatalf("BindRequest: %v", err)
	}
	if req.Name != "Ann" {
		t.Fatalf("name = %q, want trimmed", req.Name)
	}
}

func TestBindRequestFieldMessages(t *testing.T) {
	var req sampleRequest
	note := "long"
	req.Note = &note
	err := bind(t, `{"name":"Annabel","email":"nope","born":"01/04/2005"}`, &req)

	want := map[string]string{
		"name":  "Ensure this field has no more than 5 characters.",
		"email": "Enter a valid email address.",
		"born":  dto.DateFormatMessage,
		"ref":   "This field is required.",
		"note":  "Ensure this field has no more than 3 characters.",
	}
	details := detailsOf(t, err)
	for field, msg := range want {
		got, _ := details[field].([]string)
		if len(got) != 1 || got[0] != msg {
			t.Errorf("%s = %v, want %q", field, got, msg)
		}
	}
}

func TestBindRequestKeepsPrefilledFields(t *testing.T) {
	req := sampleRequest{Name: "Ann", Email: "a@b.co", Born: "2005-04-01", Ref: 2}
	if err := bind(t, `{"email":"c@d.co"}`, &req); err != nil {
		t.Fatalf("BindRequest: %v", err)
	}
	if req.Name != "Ann" || req.Email != "c@d.co" || req.Ref != 2 {
		t.Fatalf("req = %+v", req)
	}

	// an empty body changes nothing
	if err := bind(t, "", &req); err != nil {
		t.Fatalf("empty body: %v", err)
	}
}

func TestBindRequestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "wrong type", body: `{"ref":"abc"}`, field: "ref"},
		{name: "syntax", body: `{"name":`, field: apperrors.NonFieldErrorsKey},
		{name: "array body", body: `[1,2]`, field: apperrors.NonFieldErrorsKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req sampleRequest
			details := detailsOf(t, bind(t, tc.body, &req))
			if _, ok := details[tc.field]; !ok {
				t.Fatalf("details = %v, want key %s", details, tc.field)
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(base))
	router.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" {
		t.Fatal("no request id generated")
	}
	if !strings.Contains(buf.String(), generated) || !strings.Contains(buf.String(), `"status":204`) {
		t.Fatalf("log = %s", buf.String())
	}
	if strings.Count(buf.String(), generated) != 2 {
		t.Fatalf("request id missing from handler log: %s", buf.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q, want caller's", got)
	}
}
