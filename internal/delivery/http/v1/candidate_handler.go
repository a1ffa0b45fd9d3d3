package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, mw ...gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates", mw...)
	{
		candidates.POST("", handler.AddCandidate)
	}
}

// AddCandidate godoc
// @Summary      Add a candidate
// @Description  Validates and stores a candidate with educations, work experiences and an optional CV reference. Sending an id updates that candidate without validation.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate data"
// @Success      201        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Failure      429        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	var req domain.CandidateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	candidate, err := h.candidateUC.AddCandidate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Messages for submission fields sent with the wrong JSON type, keyed by the
// last segment of the decoder's field path.
var typeMismatchMessages = map[string]string{
	"firstName":   domain.MsgInvalidName,
	"lastName":    domain.MsgInvalidName,
	"email":       domain.MsgInvalidEmail,
	"phone":       domain.MsgInvalidPhone,
	"address":     domain.MsgInvalidAddress,
	"institution": domain.MsgInvalidInstitution,
	"title":       domain.MsgInvalidTitle,
	"startDate":   domain.MsgInvalidDate,
	"endDate":     domain.MsgInvalidDate,
	"company":     domain.MsgInvalidCompany,
	"position":    domain.MsgInvalidPosition,
	"description": domain.MsgInvalidDescription,
	"cv":          domain.MsgInvalidCV,
	"filePath":    domain.MsgInvalidCV,
	"fileType":    domain.MsgInvalidCV,
}

// bindError reports a wrongly typed known field the same way the validator
// reports a bad value. Anything else is a malformed body.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return apperror.BadRequest("Invalid request body")
	}
	if typeErr.Field == "id" {
		return apperror.BadRequest("Invalid candidate id")
	}

	name := typeErr.Field
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	message, ok := typeMismatchMessages[name]
	if !ok {
		return apperror.BadRequest("Invalid request body")
	}
	vErr := domain.NewValidationError(typeErr.Field, message)
	return apperror.Wrap(http.StatusBadRequest, "Error: "+message, vErr)
}
