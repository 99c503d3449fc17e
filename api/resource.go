package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/backend"
	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/paging"
	"github.com/pallium-care/console/validation"
)

// resource is a registry page: a paged list with an inline create or edit form.
type resource[T any] struct {
	h        *Handler
	path     string
	template string
	title    string
	records  backend.Records[T]
	// uploads is set for registries accepting an image with the form.
	uploads  backend.UploadRecords[T]
	validate func(T) validation.Errors
	prepare  func(c echo.Context, record T) T
	label    func(T) string
	list     func(c echo.Context) ([]T, error)
	extra    func(c echo.Context, items []T) (map[string]any, error)
	create   echo.HandlerFunc
}

type listView[T any] struct {
	Path   string
	Page   paging.Page[T]
	Query  string
	Form   T
	FormId string
	Errors validation.Errors
	Extra  map[string]any
}

// FormAction is the url the inline form posts to.
func (v listView[T]) FormAction() string {
	if v.FormId == "" {
		return v.Path
	}
	return v.Path + "/" + v.FormId
}

func (r resource[T]) routes(e *echo.Echo) {
	create := r.create
	if create == nil {
		create = r.Create
	}
	e.GET(r.path, r.Index)
	e.POST(r.path, create)
	e.GET(r.path+"/:id", r.Edit)
	e.POST(r.path+"/:id", r.Update)
	e.POST(r.path+"/:id/delete", r.Delete)
}

func (r resource[T]) Index(c echo.Context) error {
	var form T
	return r.show(c, http.StatusOK, form, "", nil, nil)
}

func (r resource[T]) Edit(c echo.Context) error {
	id := c.Param("id")
	record, err := r.records.Get(c.Request().Context(), id)
	if err != nil {
		return r.h.redirectWithFlash(c, r.path, err, "")
	}
	return r.show(c, http.StatusOK, *record, id, nil, nil)
}

func (r resource[T]) Create(c echo.Context) error {
	return r.submit(c, "")
}

func (r resource[T]) Update(c echo.Context) error {
	return r.submit(c, c.Param("id"))
}

func (r resource[T]) Delete(c echo.Context) error {
	err := r.records.Delete(c.Request().Context(), c.Param("id"))
	return r.h.redirectWithFlash(c, r.path, err, "Record deleted")
}

func (r resource[T]) submit(c echo.Context, id string) error {
	var form T
	if err := c.Bind(&form); err != nil {
		invalid := validation.Errors{}
		invalid.Add("form", "Please check the values you entered")
		return r.show(c, http.StatusUnprocessableEntity, form, id, invalid, nil)
	}
	if r.prepare != nil {
		form = r.prepare(c, form)
	}
	if invalid := r.validate(form); invalid.HasErrors() {
		return r.show(c, http.StatusUnprocessableEntity, form, id, invalid, nil)
	}

	saved, err := r.save(c, id, form)
	if err != nil {
		if errors.Is(err, errs.Unauthorized) {
			return err
		}
		r.h.logger.Infow("unable to save record", "path", r.path, "error", err)
		return r.show(c, errs.StatusCode(err), form, id, nil, err)
	}
	return r.h.redirectWithFlash(c, r.path, nil, fmt.Sprintf("%s saved", r.label(*saved)))
}

func (r resource[T]) save(c echo.Context, id string, form T) (*T, error) {
	ctx := c.Request().Context()
	if r.uploads != nil {
		upload, err := formUpload(c)
		if err != nil {
			return nil, err
		}
		if upload != nil {
			defer upload.Close()
			if id == "" {
				return r.uploads.CreateWithUpload(ctx, form, &upload.Upload)
			}
			return r.uploads.UpdateWithUpload(ctx, id, form, &upload.Upload)
		}
	}
	if id == "" {
		return r.records.Create(ctx, form)
	}
	return r.records.Update(ctx, id, form)
}

// show renders the list with the form. A failure is shown as an error toast
// on the same page.
func (r resource[T]) show(c echo.Context, code int, form T, id string, invalid validation.Errors, failure error) error {
	view := listView[T]{
		Path:   r.path,
		Query:  c.QueryParam("q"),
		Form:   form,
		FormId: id,
		Errors: invalid,
		Extra:  map[string]any{},
	}

	items, err := r.fetch(c)
	if err != nil && failure == nil {
		failure = err
	}
	if r.extra != nil {
		extra, err := r.extra(c, items)
		if err != nil && failure == nil {
			failure = err
		}
		if extra != nil {
			view.Extra = extra
		}
	}
	if errors.Is(failure, errs.Unauthorized) {
		return failure
	}
	view.Page = paging.Apply(items, paging.FromQuery(c.QueryParam("page"), r.h.config.PageSize))

	p := r.h.page(c, r.title, view)
	if failure != nil {
		p.Flash = &Flash{Kind: FlashError, Message: errs.FriendlyMessage(failure)}
		if code == http.StatusOK {
			code = errs.StatusCode(failure)
		}
	}
	return c.Render(code, r.template, p)
}

func (r resource[T]) fetch(c echo.Context) ([]T, error) {
	if r.list != nil {
		return r.list(c)
	}
	return r.records.List(c.Request().Context())
}

type formFile struct {
	backend.Upload
	file multipart.File
}

func (f *formFile) Close() error {
	return f.file.Close()
}

// formUpload returns the image posted with a multipart form, or nil.
func formUpload(c echo.Context) (*formFile, error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.BadRequest, err.Error())
	}
	if header.Size == 0 {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &formFile{
		Upload: backend.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Content:     file,
		},
		file: file,
	}, nil
}
