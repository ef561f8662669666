package fsutil

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// utf8BOM is the UTF-8 byte-order mark some editors and Windows tools
// prepend to JSON files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadJSON reads the file at path, strips a single leading byte-order
// mark if present, and unmarshals the remaining content into v.
//
// A read failure (e.g. missing file) and a decode failure stay
// distinguishable: only the latter is classified KindParse.
func (u *FSUtil) ReadJSON(path string, v interface{}) error {
	data, err := u.fs.ReadFile(path)
	if err != nil {
		return err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := sonic.Unmarshal(data, v); err != nil {
		return &Error{Op: "readjson", Path: path, Kind: KindParse, Err: err}
	}
	return nil
}

// WriteJSON marshals v with two-space indentation and writes it to
// path with a trailing newline, creating parent directories as needed.
func (u *FSUtil) WriteJSON(path string, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return &Error{Op: "writejson", Path: path, Kind: KindParse, Err: err}
	}
	data = append(data, '\n')
	return u.OutputFile(path, data)
}
