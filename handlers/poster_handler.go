package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"tactify-cms/helper"
	"tactify-cms/models"
	"tactify-cms/services"
)

type PosterHandler struct {
	posters services.PosterService
	forms   *helper.FormHelper
}

func NewPosterHandler(posters services.PosterService, forms *helper.FormHelper) *PosterHandler {
	return &PosterHandler{posters: posters, forms: forms}
}

func (h *PosterHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "writeposter.html", gin.H{"Form": models.PosterCreateRequest{}})
}

func (h *PosterHandler) Create(c *gin.Context) {
	var req models.PosterCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Message": "Poster creation failed", "Form": req})
		return
	}

	if errs := h.forms.FormErrors(req); errs != nil {
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Errors": errs, "Form": req})
		return
	}

	fileHeader, err := c.FormFile("poster")
	if err != nil {
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Message": "Image file is required", "Form": req})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Message": "Image file is unreadable", "Form": req})
		return
	}
	defer file.Close()

	post, err := h.posters.Create(req, fileHeader.Filename, file)
	switch {
	case errors.Is(err, models.ErrFileType):
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Message": "Unacceptable file type", "Form": req})
		return
	case errors.Is(err, models.ErrStorage):
		// The row exists without its file; surface a recoverable
		// failure so the author can retry via edit.
		c.HTML(http.StatusOK, "writeposter.html", gin.H{"Message": "Failed creating file in upload folder", "Form": req})
		return
	case errors.Is(err, models.ErrHeaderLength):
		c.HTML(http.StatusBadRequest, "writeposter.html", gin.H{"Message": "Header longer than 32 characters", "Form": req})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Poster creation failed"})
		return
	}

	_ = post
	c.Redirect(http.StatusFound, "/")
}

func (h *PosterHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writeposters")
		return
	}

	post, err := h.posters.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writeposters")
		return
	}

	c.HTML(http.StatusOK, "editposter.html", gin.H{"Post": post})
}

func (h *PosterHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/auth/writeposters")
		return
	}

	var req models.PosterEditRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Poster editing failed"})
		return
	}

	if errs := h.forms.FormErrors(req); errs != nil {
		c.HTML(http.StatusBadRequest, "editposter.html", gin.H{"Errors": errs, "Form": req})
		return
	}

	filename, file, closeFile, err := optionalFormFile(c, "poster")
	if err != nil {
		c.HTML(http.StatusBadRequest, "editposter.html", gin.H{"Message": "Image file is unreadable", "Form": req})
		return
	}
	defer closeFile()

	post, err := h.posters.Update(id, req, filename, file)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not present"})
		return
	case errors.Is(err, models.ErrFileType):
		c.HTML(http.StatusBadRequest, "editposter.html", gin.H{"Message": "Unacceptable file type", "Form": req})
		return
	case errors.Is(err, models.ErrStorage):
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Poster editing failed"})
		return
	case errors.Is(err, models.ErrHeaderLength):
		c.HTML(http.StatusBadRequest, "editposter.html", gin.H{"Message": "Header longer than 32 characters", "Form": req})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Poster editing failed"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d/%s", post.ID, url.PathEscape(post.Header)))
}

func (h *PosterHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Poster deletion failed"})
		return
	}

	if err := h.posters.Delete(id); err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Poster deletion failed"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// optionalFormFile opens the named upload if it was submitted. A form
// without the file yields an empty filename and a nil reader.
func optionalFormFile(c *gin.Context, field string) (string, multipart.File, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, func() {}, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, func() {}, err
	}
	return fileHeader.Filename, file, func() { file.Close() }, nil
}
