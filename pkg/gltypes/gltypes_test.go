// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package gltypes

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownPairs = []struct {
	c, want string
}{
	// gl.xml
	{"GLDEBUGPROC", "GLDEBUGPROC"},
	{"GLDEBUGPROCAMD", "GLDEBUGPROCAMD"},
	{"GLDEBUGPROCARB", "GLDEBUGPROCARB"},
	{"GLDEBUGPROCKHR", "GLDEBUGPROCKHR"},
	{"GLbitfield", "GLbitfield"},
	{"GLboolean", "GLboolean"},
	{"GLbyte", "GLbyte"},
	{"GLclampd", "GLclampd"},
	{"GLclampf", "GLclampf"},
	{"GLclampx", "GLclampx"},
	{"GLdouble", "GLdouble"},
	{"GLeglImageOES", "GLeglImageOES"},
	{"GLenum", "GLenum"},
	{"GLfixed", "GLfixed"},
	{"GLfloat", "GLfloat"},
	{"GLhalfNV", "GLhalfNV"},
	{"GLhandleARB", "GLhandleARB"},
	{"GLint", "GLint"},
	{"GLint64EXT", "GLint64EXT"},
	{"GLintptr", "GLintptr"},
	{"GLintptrARB", "GLintptrARB"},
	{"GLshort", "GLshort"},
	{"GLsizei", "GLsizei"},
	{"GLsizeiptr", "GLsizeiptr"},
	{"GLsizeiptrARB", "GLsizeiptrARB"},
	{"GLsync", "GLsync"},
	{"GLubyte", "GLubyte"},
	{"GLuint", "GLuint"},
	{"GLuint64", "GLuint64"},
	{"GLuint64EXT", "GLuint64EXT"},
	{"GLushort", "GLushort"},
	{"GLvdpauSurfaceNV", "GLvdpauSurfaceNV"},
	{"void ", "::libc::c_void"},
	{"GLboolean *", "*mut GLboolean"},
	{"GLchar *", "*mut GLchar"},
	{"GLcharARB *", "*mut GLcharARB"},
	{"GLdouble *", "*mut GLdouble"},
	{"GLenum *", "*mut GLenum"},
	{"GLfixed *", "*mut GLfixed"},
	{"GLfloat *", "*mut GLfloat"},
	{"GLhandleARB *", "*mut GLhandleARB"},
	{"GLint *", "*mut GLint"},
	{"GLint64 *", "*mut GLint64"},
	{"GLint64EXT *", "*mut GLint64EXT"},
	{"GLsizei *", "*mut GLsizei"},
	{"GLubyte *", "*mut GLubyte"},
	{"GLuint *", "*mut GLuint"},
	{"GLuint64 *", "*mut GLuint64"},
	{"GLuint64EXT *", "*mut GLuint64EXT"},
	{"GLushort *", "*mut GLushort"},
	{"GLvoid *", "*mut GLvoid"},
	{"GLvoid **", "*const *mut GLvoid"},
	{"void *", "*mut ::libc::c_void"},
	{"void **", "*const *mut ::libc::c_void"},
	{"const GLboolean *", "*const GLboolean"},
	{"const GLbyte *", "*const GLbyte"},
	{"const GLchar *", "*const GLchar"},
	{"const GLcharARB *", "*const GLcharARB"},
	{"const GLclampf *", "*const GLclampf"},
	{"const GLdouble *", "*const GLdouble"},
	{"const GLenum *", "*const GLenum"},
	{"const GLfixed *", "*const GLfixed"},
	{"const GLfloat *", "*const GLfloat"},
	{"const GLhalfNV *", "*const GLhalfNV"},
	{"const GLint *", "*const GLint"},
	{"const GLint64EXT *", "*const GLint64EXT"},
	{"const GLintptr *", "*const GLintptr"},
	{"const GLshort *", "*const GLshort"},
	{"const GLsizei *", "*const GLsizei"},
	{"const GLsizeiptr *", "*const GLsizeiptr"},
	{"const GLubyte *", "*const GLubyte"},
	{"const GLuint *", "*const GLuint"},
	{"const GLuint64 *", "*const GLuint64"},
	{"const GLuint64EXT *", "*const GLuint64EXT"},
	{"const GLushort *", "*const GLushort"},
	{"const GLvdpauSurfaceNV *", "*const GLvdpauSurfaceNV"},
	{"const GLvoid *", "*const GLvoid"},
	{"const void *", "*const ::libc::c_void"},
	{"const void **", "*const *const ::libc::c_void"},
	{"const void *const*", "*const *const ::libc::c_void"},
	{"const GLboolean **", "*const *const GLboolean"},
	{"const GLchar **", "*const *const GLchar"},
	{"const GLcharARB **", "*const *const GLcharARB"},
	{"const GLvoid **", "*const *const GLvoid"},
	{"const GLchar *const*", "*const *const GLchar"},
	{"const GLvoid *const*", "*const *const GLvoid"},
	{"struct _cl_context *", "*const _cl_context"},
	{"struct _cl_event *", "*const _cl_event"},
	// glx.xml
	{"Bool", "Bool"},
	{"Colormap", "Colormap"},
	{"DMbuffer", "DMbuffer"},
	{"Font", "Font"},
	{"GLXContext", "GLXContext"},
	{"GLXContextID", "GLXContextID"},
	{"GLXDrawable", "GLXDrawable"},
	{"GLXFBConfig", "GLXFBConfig"},
	{"GLXFBConfigSGIX", "GLXFBConfigSGIX"},
	{"GLXPbuffer", "GLXPbuffer"},
	{"GLXPbufferSGIX", "GLXPbufferSGIX"},
	{"GLXPixmap", "GLXPixmap"},
	{"GLXVideoCaptureDeviceNV", "GLXVideoCaptureDeviceNV"},
	{"GLXVideoDeviceNV", "GLXVideoDeviceNV"},
	{"GLXVideoSourceSGIX", "GLXVideoSourceSGIX"},
	{"GLXWindow", "GLXWindow"},
	{"Pixmap", "Pixmap"},
	{"Status", "Status"},
	{"VLNode", "VLNode"},
	{"VLPath", "VLPath"},
	{"VLServer", "VLServer"},
	{"Window", "Window"},
	{"__GLXextFuncPtr", "__GLXextFuncPtr"},
	{"const GLXContext", "const GLXContext"},
	{"float ", "::libc::c_float"},
	{"int ", "::libc::c_int"},
	{"int64_t", "i64"},
	{"unsigned int ", "::libc::c_uint"},
	{"unsigned long ", "::libc::c_ulong"},
	{"DMparams *", "*mut DMparams"},
	{"Display *", "*mut Display"},
	{"GLXFBConfig *", "*mut GLXFBConfig"},
	{"GLXFBConfigSGIX *", "*mut GLXFBConfigSGIX"},
	{"GLXHyperpipeConfigSGIX *", "*mut GLXHyperpipeConfigSGIX"},
	{"GLXHyperpipeNetworkSGIX *", "*mut GLXHyperpipeNetworkSGIX"},
	{"GLXVideoCaptureDeviceNV *", "*mut GLXVideoCaptureDeviceNV"},
	{"GLXVideoDeviceNV *", "*mut GLXVideoDeviceNV"},
	{"XVisualInfo *", "*mut XVisualInfo"},
	{"const char *", "*const ::libc::c_char"},
	{"const int *", "*const ::libc::c_int"},
	{"int *", "*mut ::libc::c_int"},
	{"int32_t *", "*mut i32"},
	{"int64_t *", "*mut i64"},
	{"long *", "*mut ::libc::c_long"},
	{"unsigned int *", "*mut ::libc::c_uint"},
	{"unsigned long *", "*mut ::libc::c_ulong"},
	// wgl.xml
	{"BOOL", "BOOL"},
	{"DWORD", "DWORD"},
	{"FLOAT", "FLOAT"},
	{"HANDLE", "HANDLE"},
	{"HDC", "HDC"},
	{"HENHMETAFILE", "HENHMETAFILE"},
	{"HGLRC", "HGLRC"},
	{"HGPUNV", "HGPUNV"},
	{"HPBUFFERARB", "HPBUFFERARB"},
	{"HPBUFFEREXT", "HPBUFFEREXT"},
	{"HPVIDEODEV", "HPVIDEODEV"},
	{"HVIDEOINPUTDEVICENV", "HVIDEOINPUTDEVICENV"},
	{"HVIDEOOUTPUTDEVICENV", "HVIDEOOUTPUTDEVICENV"},
	{"INT", "INT"},
	{"INT64", "INT64"},
	{"LPCSTR", "LPCSTR"},
	{"LPGLYPHMETRICSFLOAT", "LPGLYPHMETRICSFLOAT"},
	{"LPVOID", "LPVOID"},
	{"PGPU_DEVICE", "PGPU_DEVICE"},
	{"PROC", "PROC"},
	{"UINT", "UINT"},
	{"VOID", "VOID"},
	{"BOOL *", "*mut BOOL"},
	{"DWORD *", "*mut DWORD"},
	{"FLOAT *", "*mut FLOAT"},
	{"HANDLE *", "*mut HANDLE"},
	{"HGPUNV *", "*mut HGPUNV"},
	{"HPVIDEODEV *", "*mut HPVIDEODEV"},
	{"HVIDEOINPUTDEVICENV *", "*mut HVIDEOINPUTDEVICENV"},
	{"HVIDEOOUTPUTDEVICENV *", "*mut HVIDEOOUTPUTDEVICENV"},
	{"INT32 *", "*mut INT32"},
	{"INT64 *", "*mut INT64"},
	{"UINT *", "*mut UINT"},
	{"USHORT *", "*mut USHORT"},
	{"const COLORREF *", "*const COLORREF"},
	{"const DWORD *", "*const DWORD"},
	{"const FLOAT *", "*const FLOAT"},
	{"const HANDLE *", "*const HANDLE"},
	{"const HGPUNV *", "*const HGPUNV"},
	{"const LAYERPLANEDESCRIPTOR *", "*const LAYERPLANEDESCRIPTOR"},
	{"const LPVOID *", "*const LPVOID"},
	{"const PIXELFORMATDESCRIPTOR *", "*const PIXELFORMATDESCRIPTOR"},
	{"const USHORT *", "*const USHORT"},
	{"float *", "*mut ::libc::c_float"},
}

func TestMapKnownPairs(t *testing.T) {
	require.Equal(t, len(knownPairs), Default().Len())

	for _, tt := range knownPairs {
		got, err := Map(tt.c)
		require.NoError(t, err, tt.c)
		require.Equal(t, tt.want, got, tt.c)
	}
}

func TestMapDeterministic(t *testing.T) {
	for _, tt := range knownPairs {
		first, err := Map(tt.c)
		require.NoError(t, err)
		second, err := Map(tt.c)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestMapUnresolved(t *testing.T) {
	cases := []string{
		"totally_unknown_type",
		"",
		"GLuint **", // only "GLuint *" is known
		"int",       // bare scalars carry a trailing space
		"GLuint ",   // registry types do not
		"const  GLchar *",
	}

	for _, c := range cases {
		got, err := Map(c)
		require.Empty(t, got)
		require.ErrorIs(t, err, ErrUnresolvedType)

		var uerr *UnresolvedTypeError
		require.True(t, errors.As(err, &uerr))
		require.Equal(t, c, uerr.C)
		require.Contains(t, err.Error(), `"`+c+`"`)
	}
}

func TestReturnSuffix(t *testing.T) {
	cases := []struct {
		ty   string
		want string
	}{
		{"GLvoid", ""},
		{"VOID", ""},
		{"c_void", ""},
		{"void ", ""},
		{"::libc::c_void", ""},
		{"GLuint", " -> GLuint"},
		{"GLuint *", " -> *const GLuint"},
		{"*mut GLuint", " -> *const GLuint"},
		{"const GLubyte *", " -> *const GLubyte"},
		{"GLvoid **", " -> *const *const GLvoid"},
		{"void **", " -> *const *const ::libc::c_void"},
		{"*mut *mut T", " -> *const *const T"},
		{"int ", " -> ::libc::c_int"},
		{"HGLRC", " -> HGLRC"},
		{"totally_unknown_type", " -> totally_unknown_type"},
	}

	for _, tt := range cases {
		require.Equal(t, tt.want, ReturnSuffix(tt.ty), tt.ty)
	}
}

func TestReturnSuffixRewritesOnlyReturnPosition(t *testing.T) {
	param, err := Map("GLuint *")
	require.NoError(t, err)
	require.Equal(t, "*mut GLuint", param)
	require.Equal(t, " -> *const GLuint", ReturnSuffix("GLuint *"))
}

func TestReturnType(t *testing.T) {
	got, err := Default().ReturnType("void *")
	require.NoError(t, err)
	require.Equal(t, " -> *const ::libc::c_void", got)

	got, err = Default().ReturnType("void ")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = Default().ReturnType("totally_unknown_type")
	require.ErrorIs(t, err, ErrUnresolvedType)
}

func TestNewTableDuplicate(t *testing.T) {
	cases := [][]Entry{
		{{"GLuint *", "*mut GLuint"}, {"GLint", "GLint"}, {"GLuint *", "*const GLuint"}},
		{{"void ", "::libc::c_void"}, {"void ", "::libc::c_void"}},
	}

	for _, entries := range cases {
		table, err := NewTable(entries)
		require.Nil(t, table)

		var derr *DuplicateError
		require.True(t, errors.As(err, &derr))
		require.Equal(t, entries[0].C, derr.C)
		require.Equal(t, entries[0].Target, derr.First)
		require.Equal(t, entries[len(entries)-1].Target, derr.Second)
	}
}

func TestDefaultSectionsDisjoint(t *testing.T) {
	for _, lists := range [][][]Entry{
		{glEntries},
		{glEntries, glxEntries},
		{glEntries, glxEntries, wglEntries},
	} {
		var all []Entry
		for _, l := range lists {
			all = append(all, l...)
		}
		_, err := NewTable(all)
		require.NoError(t, err)
	}
}

func TestEntriesSorted(t *testing.T) {
	entries := Default().Entries()
	require.Len(t, entries, Default().Len())
	for i := 1; i < len(entries); i++ {
		require.Less(t, entries[i-1].C, entries[i].C)
	}

	entries[0].Target = "changed"
	got, err := Map(entries[0].C)
	require.NoError(t, err)
	require.NotEqual(t, "changed", got)
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tt := range knownPairs {
				got, err := Map(tt.c)
				if err != nil || got != tt.want {
					t.Errorf("Map(%q) = %q, %v", tt.c, got, err)
				}
				ReturnSuffix(tt.c)
			}
		}()
	}
	wg.Wait()
}
