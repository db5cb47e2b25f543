package events

import "github.com/linkup-social/linkup-header/internal/logging"

type DirectoryTracer struct{}

type NavTracer struct{}

type AuthTracer struct{}

type PointerTracer struct{}

var (
	Directory = DirectoryTracer{}
	Nav       = NavTracer{}
	Auth      = AuthTracer{}
	Pointer   = PointerTracer{}
)

func (DirectoryTracer) Fetch(source string) {
	logging.Trace("directory.fetch", map[string]interface{}{"source": source})
}

func (DirectoryTracer) Loaded(count int) {
	logging.Trace("directory.loaded", map[string]interface{}{"count": count})
}

func (DirectoryTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("directory.failed", map[string]interface{}{"error": err.Error()})
}

func (DirectoryTracer) Imported(path string, count int) {
	logging.Trace("directory.import", map[string]interface{}{"path": path, "count": count})
}

func (NavTracer) Push(route, origin string) {
	logging.Trace("nav.push", map[string]interface{}{"route": route, "origin": origin})
}

func (NavTracer) Done(route string) {
	logging.Trace("nav.done", map[string]interface{}{"route": route})
}

func (NavTracer) Location(path, pattern string, depth int) {
	logging.Trace("nav.location", map[string]interface{}{"path": path, "pattern": pattern, "depth": depth})
}

func (NavTracer) Failed(route string, err error) {
	payload := map[string]interface{}{"route": route}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("nav.failed", payload)
}

func (AuthTracer) Logout() {
	logging.Trace("auth.logout", nil)
}

func (AuthTracer) Result(status string) {
	logging.Trace("auth.logout.result", map[string]interface{}{"status": status})
}

func (AuthTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("auth.logout.failed", map[string]interface{}{"error": err.Error()})
}

func (PointerTracer) Click(x, y int, target string) {
	logging.Trace("pointer.click", map[string]interface{}{"x": x, "y": y, "target": target})
}

func (PointerTracer) Outside(x, y int) {
	logging.Trace("pointer.outside", map[string]interface{}{"x": x, "y": y})
}
