// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package gltypes

// glEntries maps the spellings found in gl.xml.
var glEntries = []Entry{
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
}

// glxEntries maps the spellings found in glx.xml that gl.xml does not already cover.
var glxEntries = []Entry{
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
}

// wglEntries maps the spellings found in wgl.xml that gl.xml and glx.xml do not already cover.
var wglEntries = []Entry{
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
