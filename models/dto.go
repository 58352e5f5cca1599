package models

// Form payloads. Binding is by `form` tag via gin; validation runs
// through the helper's validator so field errors can be translated
// back into the rendered form.

type LoginRequest struct {
	Email      string `form:"email" validate:"required,email,max=64"`
	Password   string `form:"password" validate:"required"`
	RememberMe bool   `form:"remember_me"`
}

type PosterCreateRequest struct {
	Header      string `form:"header" validate:"required,max=255"`
	Description string `form:"desc" validate:"required,max=500"`
	Body        string `form:"body" validate:"required"`
	Tags        string `form:"tags" validate:"required,max=255"`
}

type PosterEditRequest struct {
	Header      string `form:"header" validate:"required,max=255"`
	Description string `form:"description" validate:"required,max=500"`
	Body        string `form:"body" validate:"required"`
	Tags        string `form:"tags" validate:"required,max=255"`
}

type TriviaCreateRequest struct {
	Header string `form:"header" validate:"required,max=255"`
	Body   string `form:"body" validate:"required"`
	Tags   string `form:"tags" validate:"required,max=255"`
	Date   string `form:"date" validate:"required"`
	// URL is accepted by the form but never persisted.
	URL string `form:"url"`
}

type TriviaEditRequest struct {
	Header string `form:"header" validate:"required,max=255"`
	Body   string `form:"body" validate:"required"`
	Tags   string `form:"tags" validate:"required,max=255"`
	Date   string `form:"date" validate:"required"`
	URL    string `form:"url"`
}

type ListParams struct {
	Page int `form:"page,default=1"`
}
