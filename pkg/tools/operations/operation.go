package operations

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/baize-ai/skills/skill"
)

// Handle implements the skill contract for the file skill: validate the
// action and path, then dispatch to the named filesystem primitive.
// An unknown action is a failure envelope, never a fatal error. Every
// primitive converts its own errors into failure envelopes, so nothing
// propagates out of this function.
func Handle(ctx context.Context, params json.RawMessage) skill.Envelope {
	var args Args
	if err := json.Unmarshal(params, &args); err != nil {
		return skill.Failf("invalid parameters: %v", err)
	}
	if args.Action == "" {
		return skill.Fail("missing required parameter: action")
	}
	if args.Path == "" {
		return skill.Fail("missing required parameter: path")
	}

	switch args.Action {
	case "read":
		return Read(ctx, args.Path, args.Encoding)
	case "write":
		return Write(ctx, args.Path, args.Content, args.Encoding)
	case "create":
		return Create(ctx, args.Path, args.Content, args.Encoding)
	case "delete":
		return Delete(ctx, args.Path)
	case "exists":
		return Exists(ctx, args.Path)
	default:
		return skill.Failf("unknown action: %s", args.Action)
	}
}

// Read returns the file content, path, and on-disk byte size. A missing
// file is a failure envelope, not an error.
func Read(ctx context.Context, path, encodingName string) skill.Envelope {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return skill.Failf("file does not exist: %s", path)
		}
		return skill.Failf("read file failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return skill.Failf("read file failed: %v", err)
	}
	text, err := decodeText(raw, encodingName)
	if err != nil {
		return skill.Failf("read file failed: %v", err)
	}

	return skill.OK(ReadData{Content: text, Path: path, Size: info.Size()}, text)
}

// Write overwrites path with content, creating parent directories as
// needed.
func Write(ctx context.Context, path, content, encodingName string) skill.Envelope {
	data, err := putFile(path, content, encodingName)
	if err != nil {
		return skill.Failf("write file failed: %v", err)
	}
	return skill.OK(data, fmt.Sprintf("file written: %s", path))
}

// Create behaves exactly like Write apart from the message wording. The two
// actions are deliberately equivalent: create does not fail when the file
// already exists.
func Create(ctx context.Context, path, content, encodingName string) skill.Envelope {
	data, err := putFile(path, content, encodingName)
	if err != nil {
		return skill.Failf("create file failed: %v", err)
	}
	return skill.OK(data, fmt.Sprintf("file created: %s", path))
}

// Delete removes the file. Deleting a missing file is a failure envelope.
func Delete(ctx context.Context, path string) skill.Envelope {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return skill.Failf("file does not exist: %s", path)
		}
		return skill.Failf("delete file failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		return skill.Failf("delete file failed: %v", err)
	}
	return skill.OK(nil, fmt.Sprintf("file deleted: %s", path))
}

// Exists reports whether the path exists. Non-existence is the expected
// outcome of the check, not an error.
func Exists(ctx context.Context, path string) skill.Envelope {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return skill.OK(ExistsData{Exists: true}, fmt.Sprintf("file exists: %s", path))
	case os.IsNotExist(err):
		return skill.OK(ExistsData{Exists: false}, fmt.Sprintf("file does not exist: %s", path))
	default:
		return skill.Failf("check file failed: %v", err)
	}
}

// putFile is the shared implementation of write and create.
func putFile(path, content, encodingName string) (WriteData, error) {
	raw, err := encodeText(content, encodingName)
	if err != nil {
		return WriteData{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WriteData{}, err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return WriteData{}, err
	}
	return WriteData{Path: path, Size: len(raw)}, nil
}

// Manifest describes the skill for the caller framework.
func Manifest() skill.Manifest {
	return skill.Manifest{
		Name:        "file",
		Version:     "1.0.0",
		Description: "Read, write, create, delete, and existence-check files on the local filesystem.",
		Params: []skill.ParamSpec{
			{Name: "action", Type: "string", Description: "One of: read, write, create, delete, exists", Required: true},
			{Name: "path", Type: "string", Description: "The path to operate on", Required: true},
			{Name: "content", Type: "string", Description: "Content for write and create", Default: ""},
			{Name: "encoding", Type: "string", Description: "Text encoding by IANA name", Default: "utf-8"},
		},
	}
}

// --- Encoding Helpers ---

// decodeText converts raw bytes in the named charset to UTF-8. An empty
// name or any UTF-8 spelling is a no-op.
func decodeText(raw []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(raw), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// encodeText converts UTF-8 content into the named charset.
func encodeText(content, name string) ([]byte, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(content), nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}

// lookupEncoding resolves an IANA charset name. A nil encoding means
// identity (UTF-8).
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return enc, nil
}
