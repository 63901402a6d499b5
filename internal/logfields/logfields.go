package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyFile     = "file"
	KeyPath     = "path"
	KeyLine     = "line"
	KeyKind     = "kind"
	KeySide     = "side"
	KeyCategory = "category"
	KeyName     = "name"
	KeyTemplate = "template"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr   { return slog.String(KeyRunID, id) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Line(n int) slog.Attr        { return slog.Int(KeyLine, n) }
func Kind(k string) slog.Attr     { return slog.String(KeyKind, k) }
func Side(s string) slog.Attr     { return slog.String(KeySide, s) }
func Category(c string) slog.Attr { return slog.String(KeyCategory, c) }
func Name(n string) slog.Attr     { return slog.String(KeyName, n) }
func Template(t string) slog.Attr { return slog.String(KeyTemplate, t) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
