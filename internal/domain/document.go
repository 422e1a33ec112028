package domain

// Server is one entry in the document's servers list. Converted
// topologies reference a single local server.
type Server struct {
	Host  string `json:"host"`
	ID    int    `json:"id"`
	Local bool   `json:"local"`
	Port  int    `json:"port"`
}

// Note is a free-text annotation carried over from the legacy artwork.
type Note struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Color    string  `json:"color,omitempty"`
	Rotation int     `json:"rotation,omitempty"`
}

// Shape is an ellipse or rectangle annotation.
type Shape struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FillColor   string  `json:"fill_color,omitempty"`
	BorderColor string  `json:"border_color,omitempty"`
	Rotation    int     `json:"rotation,omitempty"`
}

// Image is a pixmap annotation referencing an image file by path.
type Image struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Topology is the body of the converted document.
type Topology struct {
	Links      []*Link `json:"links"`
	Nodes      []*Node `json:"nodes"`
	Servers    []Server `json:"servers"`
	Notes      []Note  `json:"notes,omitempty"`
	Ellipses   []Shape `json:"ellipses,omitempty"`
	Rectangles []Shape `json:"rectangles,omitempty"`
	Images     []Image `json:"images,omitempty"`
}

// Document is the complete converted topology ready for serialization.
type Document struct {
	Name          string   `json:"name"`
	ResourcesType string   `json:"resources_type"`
	Topology      Topology `json:"topology"`
	Type          string   `json:"type"`
	Version       string   `json:"version"`
}

// NewDocument returns a document shell with the fixed format fields set.
func NewDocument(name string) *Document {
	return &Document{
		Name:          name,
		ResourcesType: "local",
		Type:          "topology",
		Version:       "1.0",
	}
}
