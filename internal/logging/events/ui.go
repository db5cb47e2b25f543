package events

import "github.com/linkup-social/linkup-header/internal/logging"

type SearchTracer struct{}

type SelectionTracer struct{}

type MenuTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type CloseReason string

const (
	ReasonOutside CloseReason = "outside"
	ReasonEscape  CloseReason = "escape"
	ReasonSubmit  CloseReason = "submit"
	ReasonEmpty   CloseReason = "empty"
)

var (
	Search    = SearchTracer{}
	Selection = SelectionTracer{}
	Menu      = MenuTracer{}
	Action    = ActionTracer{}
	Command   = CommandTracer{}
)

func (SearchTracer) Focus(query string) {
	logging.Trace("search.focus", map[string]interface{}{"query": query})
}

func (SearchTracer) Close(query string, reason CloseReason) {
	logging.Trace("search.close", map[string]interface{}{"query": query, "reason": string(reason)})
}

func (SearchTracer) Query(query string, results int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "results": results})
}

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}

func (SearchTracer) Cursor(pos int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) CursorWord(pos int) {
	logging.Trace("search.cursor-word", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) Highlight(index int, id string) {
	logging.Trace("search.highlight", map[string]interface{}{"index": index, "id": id})
}

func (SelectionTracer) Pick(id, username, route string) {
	logging.Trace("selection.pick", map[string]interface{}{"id": id, "username": username, "route": route})
}

func (SelectionTracer) Settled(route string, failed bool) {
	logging.Trace("selection.settled", map[string]interface{}{"route": route, "failed": failed})
}

func (MenuTracer) Open(menu string) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menu})
}

func (MenuTracer) Close(menu string) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menu})
}

func (MenuTracer) Enter(menu, itemID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menu, "item": itemID, "label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (CommandTracer) Timeout(id, label string) {
	logging.Trace("command.timeout", map[string]interface{}{"id": id, "label": label})
}
