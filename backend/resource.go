package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/TwiN/deepmerge"
	"github.com/fatih/structs"
	"github.com/oapi-codegen/runtime"
)

const (
	uploadField     = "image"
	defaultFileType = "application/octet-stream"
)

// Resource is a typed view of one REST collection.
type Resource[T any] struct {
	client *Client
	name   string
}

var _ UploadRecords[struct{}] = &Resource[struct{}]{}

func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{
		client: client,
		name:   name,
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

func (r *Resource[T]) collectionPath() string {
	return fmt.Sprintf("/api/%s", r.name)
}

func (r *Resource[T]) recordPath(id string) (string, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/api/%s/%s", r.name, pathParam0), nil
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	req, err := r.client.NewRequest(ctx, http.MethodGet, r.collectionPath()+"/view", nil, "")
	if err != nil {
		return nil, err
	}
	data, err := r.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeList[T](data)
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	path, err := r.recordPath(id)
	if err != nil {
		return nil, err
	}
	record := new(T)
	if err := r.client.DoJSON(ctx, http.MethodGet, path, nil, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Resource[T]) Create(ctx context.Context, record T) (*T, error) {
	created := new(T)
	if err := r.client.DoJSON(ctx, http.MethodPost, r.collectionPath(), record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Resource[T]) Update(ctx context.Context, id string, record T) (*T, error) {
	path, err := r.recordPath(id)
	if err != nil {
		return nil, err
	}
	updated := new(T)
	if err := r.client.DoJSON(ctx, http.MethodPut, path, record, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Patch changes only the given fields. The backend replaces whole records on
// PUT so the current record is fetched and the fields are merged into it.
func (r *Resource[T]) Patch(ctx context.Context, id string, fields map[string]any) (*T, error) {
	path, err := r.recordPath(id)
	if err != nil {
		return nil, err
	}
	req, err := r.client.NewRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	current, err := r.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	changes, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	merged, err := deepmerge.JSON(unwrap(current), changes, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to merge %s update: %w", r.name, err)
	}

	updated := new(T)
	if err := r.client.DoJSON(ctx, http.MethodPut, path, json.RawMessage(merged), updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	path, err := r.recordPath(id)
	if err != nil {
		return err
	}
	return r.client.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (r *Resource[T]) CreateWithUpload(ctx context.Context, record T, upload *Upload) (*T, error) {
	if upload.Empty() {
		return r.Create(ctx, record)
	}
	return r.sendMultipart(ctx, http.MethodPost, r.collectionPath(), record, upload)
}

func (r *Resource[T]) UpdateWithUpload(ctx context.Context, id string, record T, upload *Upload) (*T, error) {
	if upload.Empty() {
		return r.Update(ctx, id, record)
	}
	path, err := r.recordPath(id)
	if err != nil {
		return nil, err
	}
	return r.sendMultipart(ctx, http.MethodPut, path, record, upload)
}

func (r *Resource[T]) sendMultipart(ctx context.Context, method, path string, record T, upload *Upload) (*T, error) {
	body, contentType, err := EncodeMultipart(record, upload)
	if err != nil {
		return nil, err
	}
	req, err := r.client.NewRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	data, err := r.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	result := new(T)
	if err := decodeOne(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

// EncodeMultipart writes the json fields of record as form values followed by
// the uploaded file in the "image" part.
func EncodeMultipart(record any, upload *Upload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	s := structs.New(record)
	s.TagName = "json"
	for key, value := range s.Map() {
		if value == nil {
			continue
		}
		if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
			return nil, "", err
		}
	}

	if !upload.Empty() {
		contentType := upload.ContentType
		if contentType == "" {
			contentType = defaultFileType
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadField, upload.Filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, upload.Content); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
