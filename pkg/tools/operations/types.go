package operations

// Args represents the parameters of one file skill invocation.
type Args struct {
	Action   string `json:"action" jsonschema:"required,description=One of: read write create delete exists."`
	Path     string `json:"path" jsonschema:"required,description=The absolute or relative path to operate on."`
	Content  string `json:"content,omitempty" jsonschema:"description=Content for write and create. Defaults to empty."`
	Encoding string `json:"encoding,omitempty" jsonschema:"description=Text encoding by IANA name. Defaults to utf-8."`
}

// ReadData is the data payload of a successful read.
type ReadData struct {
	Content string `json:"content"`
	Path    string `json:"path"`
	Size    int64  `json:"size"` // on-disk byte size
}

// WriteData is the data payload of a successful write or create.
type WriteData struct {
	Path string `json:"path"`
	Size int    `json:"size"` // encoded byte length of the content written
}

// ExistsData is the data payload of an exists check.
type ExistsData struct {
	Exists bool `json:"exists"`
}
