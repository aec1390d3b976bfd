// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package glregistry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

var baseURI = &url.URL{
	Scheme: "https",
	Host:   "raw.githubusercontent.com",
	Path:   "/KhronosGroup/OpenGL-Registry/main/xml/",
}

// File returns the registry file name that declares api.
func File(api string) (string, error) {
	switch api {
	case "gl", "gles1", "gles2", "glcore":
		return "gl.xml", nil
	case "glx":
		return "glx.xml", nil
	case "wgl":
		return "wgl.xml", nil
	default:
		return "", fmt.Errorf("unknown api %q", api)
	}
}

// URL returns the address of the upstream registry file for api.
func URL(api string) (string, error) {
	name, err := File(api)
	if err != nil {
		return "", err
	}

	u := *baseURI
	u.Path = path.Join(u.Path, name)

	return u.String(), nil
}

// Download downloads the upstream registry file for api.
func Download(ctx context.Context, api string) ([]byte, error) {
	uri, err := URL(api)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: %s", uri, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri, err)
	}

	return data, nil
}
