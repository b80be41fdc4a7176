// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-viper/mapstructure/v2"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// decodeBody fills dst from a JSON or URL-encoded request body. Form keys
// are matched against the mapstructure tags of dst, which mirror its JSON
// names, and string values are converted to the field types.
//
// Oversized bodies yield ErrRequestBodyTooLarge; everything else that
// cannot be decoded yields ErrInvalidRequestBody.
func decodeBody(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	if mediaType == contentTypeForm {
		err = decodeForm(r, dst)
	} else {
		err = decodeJSON(r, dst)
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyRequestBody
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyRequestBody
	}

	return err
}

func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	values := make(map[string]any, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
