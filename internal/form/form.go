package form

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/upload"
)

// Encoding enumerates the body encodings the normalizer understands.
// Decoder selection is driven by the declared Content-Type alone.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingJSON
	EncodingURLForm
	EncodingMultipart
)

const maxMultipartMemory = 32 << 20

// DetectEncoding classifies a declared Content-Type header value.
func DetectEncoding(contentType string) Encoding {
	switch {
	case strings.Contains(contentType, "application/json"):
		return EncodingJSON
	case strings.Contains(contentType, "multipart/form-data"):
		return EncodingMultipart
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		return EncodingURLForm
	default:
		return EncodingUnknown
	}
}

// Upload is a file part: the client-supplied filename and its raw content.
type Upload struct {
	Filename string
	Data     []byte
}

// Value is a single submitted field. Exactly one side is set: Upload is nil
// for plain text fields.
type Value struct {
	Text   string
	Upload *Upload
}

// Options tune normalization per endpoint.
type Options struct {
	// SkipEmptyUploads drops file parts with an empty filename instead of
	// handing them to the store. Only the update path sets this.
	SkipEmptyUploads bool
}

// Normalizer turns a request body into a flat field→string mapping. File
// parts are persisted to the upload store and replaced by their stored path.
type Normalizer struct {
	uploads *upload.Store
}

// NewNormalizer builds a normalizer writing uploads into store.
func NewNormalizer(store *upload.Store) *Normalizer {
	return &Normalizer{uploads: store}
}

// Normalize dispatches on the declared content type and returns the
// normalized mapping. An unrecognized content type returns
// apperrors.ErrUnsupportedContentType and the caller must not validate.
func (n *Normalizer) Normalize(r *http.Request, opts Options) (map[string]string, error) {
	switch DetectEncoding(r.Header.Get("Content-Type")) {
	case EncodingJSON:
		return normalizeJSON(r.Body)
	case EncodingURLForm:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return n.resolve(urlFormFields(r), opts)
	case EncodingMultipart:
		fields, err := multipartFields(r)
		if err != nil {
			return nil, err
		}
		return n.resolve(fields, opts)
	default:
		return nil, apperrors.ErrUnsupportedContentType
	}
}

// resolve collapses the Text/Upload values into strings, persisting uploads.
func (n *Normalizer) resolve(fields map[string]Value, opts Options) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for key, v := range fields {
		if v.Upload == nil {
			out[key] = v.Text
			continue
		}
		if v.Upload.Filename == "" && opts.SkipEmptyUploads {
			continue
		}
		path, err := n.uploads.Save(v.Upload.Filename, v.Upload.Data)
		if err != nil {
			return nil, err
		}
		out[key] = path
	}
	return out, nil
}

func urlFormFields(r *http.Request) map[string]Value {
	fields := make(map[string]Value, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			fields[key] = Value{Text: vals[0]}
		}
	}
	return fields
}

// multipartFields walks the parts directly. A part is file-like when its
// Content-Disposition carries a filename parameter at all, even an empty
// one; stdlib ParseMultipartForm would fold empty-filename parts into plain
// values and lose that distinction.
func multipartFields(r *http.Request) (map[string]Value, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("multipart reader: %w", err)
	}

	fields := make(map[string]Value)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart part: %w", err)
		}

		name := part.FormName()
		if name == "" {
			part.Close()
			continue
		}

		_, params, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		data, err := io.ReadAll(io.LimitReader(part, maxMultipartMemory))
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("read multipart part %q: %w", name, err)
		}

		if filename, ok := params["filename"]; ok {
			fields[name] = Value{Upload: &Upload{Filename: filename, Data: data}}
		} else {
			fields[name] = Value{Text: string(data)}
		}
	}
	return fields, nil
}

// normalizeJSON decodes a flat JSON object, keeping numbers verbatim.
func normalizeJSON(body io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}

	out := make(map[string]string, len(raw))
	for key, v := range raw {
		out[key] = stringify(v)
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
