package domain

type DocumentArtifact struct {
	Path      string `json:"-"`
	Recipient string `json:"to"`
	FileName  string `json:"name"`
	Message   string `json:"-"`
}

type ErrorReport struct {
	Name        string `json:"name"`
	Path        string `json:"-"`
	DownloadURL string `json:"downloadUrl"`
	Encrypted   bool   `json:"encrypted"`
}

type Template struct {
	ID          string
	Name        string
	RenderPath  string
	MessagePath string
}

type RenderedDocument struct {
	Content []byte
	Ext     string
}

// Conversion is a running external conversion owned by a single row.
type Conversion interface {
	Wait() error
	Kill() error
}
