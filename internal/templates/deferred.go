package templates

import "github.com/a-h/templ"

// Deferred is a child component loaded through the client runtime.
//
// When ServerRenderable is false the server response only carries a loader
// placeholder; the content is fetched from Path after the page reaches the
// client. Load failures leave the placeholder in place.
type Deferred struct {
	// Path is the fragment route fetched by the client.
	Path string
	// LoadingMessage is announced to screen readers while loading.
	LoadingMessage string
	// ServerRenderable allows Render to be inlined into the page.
	ServerRenderable bool
	// Render produces the content when it may be rendered on the server.
	Render templ.Component
}

// Component resolves the deferred child for a server render pass.
func (d Deferred) Component() templ.Component {
	if d.ServerRenderable && d.Render != nil {
		return d.Render
	}
	return LazyLoad(d.Path, d.LoadingMessage)
}
