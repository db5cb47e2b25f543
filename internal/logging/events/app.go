package events

import "github.com/linkup-social/linkup-header/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Mount(subscription int) {
	logging.Trace("app.mount", map[string]interface{}{"subscription": subscription})
}

func (AppTracer) Unmount(subscription int) {
	logging.Trace("app.unmount", map[string]interface{}{"subscription": subscription})
}

func (AppTracer) Dropped(msgType string) {
	logging.Trace("app.dropped", map[string]interface{}{"msg": msgType})
}

func (AppTracer) Resize(width, height int, compact bool) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height, "compact": compact})
}
