package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"tactify-cms/helper"
	"tactify-cms/models"
	"tactify-cms/services"
)

type TriviaHandler struct {
	trivias services.TriviaService
	forms   *helper.FormHelper
}

func NewTriviaHandler(trivias services.TriviaService, forms *helper.FormHelper) *TriviaHandler {
	return &TriviaHandler{trivias: trivias, forms: forms}
}

func (h *TriviaHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "writetrivia.html", gin.H{"Form": models.TriviaCreateRequest{}})
}

func (h *TriviaHandler) Create(c *gin.Context) {
	var req models.TriviaCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Trivia creation failed"})
		return
	}

	if errs := h.forms.FormErrors(req); errs != nil {
		c.HTML(http.StatusBadRequest, "writetrivia.html", gin.H{"Errors": errs, "Form": req})
		return
	}

	_, err := h.trivias.Create(req)
	switch {
	case errors.Is(err, models.ErrValidation):
		c.HTML(http.StatusBadRequest, "writetrivia.html", gin.H{"Message": "Date must be YYYY-MM-DD", "Form": req})
		return
	case errors.Is(err, models.ErrHeaderLength):
		c.HTML(http.StatusBadRequest, "writetrivia.html", gin.H{"Message": "Header longer than 32 characters", "Form": req})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Trivia creation failed"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *TriviaHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writetrivias")
		return
	}

	trivia, err := h.trivias.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writetrivias")
		return
	}

	c.HTML(http.StatusOK, "edittrivia.html", gin.H{"Trivia": trivia})
}

func (h *TriviaHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writetrivias")
		return
	}

	var req models.TriviaEditRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Trivia editing failed"})
		return
	}

	if errs := h.forms.FormErrors(req); errs != nil {
		c.HTML(http.StatusBadRequest, "edittrivia.html", gin.H{"Errors": errs, "Form": req})
		return
	}

	trivia, err := h.trivias.Update(id, req)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Trivia not present"})
		return
	case errors.Is(err, models.ErrValidation):
		c.HTML(http.StatusBadRequest, "edittrivia.html", gin.H{"Message": "Date must be YYYY-MM-DD", "Form": req})
		return
	case errors.Is(err, models.ErrHeaderLength):
		c.HTML(http.StatusBadRequest, "edittrivia.html", gin.H{"Message": "Header longer than 32 characters", "Form": req})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Trivia editing failed"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/trivia/%d/%s", trivia.ID, url.PathEscape(trivia.Header)))
}

func (h *TriviaHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Trivia deletion failed"})
		return
	}

	if err := h.trivias.Delete(id); err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Trivia deletion failed"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}
