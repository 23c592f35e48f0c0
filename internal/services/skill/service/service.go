// Package service implements the intent router.
//
// Handle is the whole turn: resolve the request to one operation, run it
// against the event store and the navigation cursor, and hand back an
// outcome plus the session to carry forward. Every error the router can
// characterize is recovered here into a spoken reply; only collaborator
// faults escape to the transport's catch-all.
package service

import (
	"context"

	"almanacco/internal/core/dates"
	"almanacco/internal/core/nav"
	perr "almanacco/internal/platform/errors"
	"almanacco/internal/platform/logger"
	evdom "almanacco/internal/services/events/domain"
	dom "almanacco/internal/services/skill/domain"
)

// Router implements domain.RouterPort
type Router struct {
	Store evdom.StorePort
}

// New constructs a router over a required event store
func New(store evdom.StorePort) *Router {
	return &Router{Store: store}
}

// Handle implements domain.RouterPort
func (rt *Router) Handle(
	ctx context.Context,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	op := dom.Resolve(req, sess)

	out, sess, err := rt.dispatch(ctx, op, req, sess)
	if err == nil {
		return out, sess, nil
	}
	if perr.Recoverable(perr.CodeOf(err)) {
		logger.C(ctx).Warn().
			Err(err).
			Str("intent", req.Intent).
			Msg("turn recovered")
		return dom.Outcome{Kind: dom.OutcomeError}, sess, nil
	}
	return dom.Outcome{}, sess, err
}

func (rt *Router) dispatch(
	ctx context.Context,
	op dom.Op,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	switch op {
	case dom.OpLaunch:
		return dom.Outcome{Kind: dom.OutcomeLaunch}, sess, nil
	case dom.OpSessionEnded:
		return dom.Outcome{Kind: dom.OutcomeNone}, sess, nil
	case dom.OpStartAdd:
		return rt.startAdd(req, sess)
	case dom.OpCompleteAdd:
		return rt.completeAdd(ctx, req, sess)
	case dom.OpRetrieve:
		return rt.retrieve(ctx, req, sess)
	case dom.OpStartModify:
		return rt.startModify(ctx, req, sess)
	case dom.OpNext:
		return rt.step(ctx, req.UserID, sess, nav.Next)
	case dom.OpPrevious:
		return rt.step(ctx, req.UserID, sess, nav.Prev)
	case dom.OpStartDelete:
		return rt.startDelete(ctx, req.UserID, sess)
	case dom.OpConfirmDelete:
		return rt.confirmDelete(ctx, req.UserID, sess)
	case dom.OpCancelDelete:
		sess.PendingDelete = false
		return dom.Outcome{Kind: dom.OutcomeDeleteCancelled}, sess, nil
	case dom.OpStartEdit:
		return rt.startEdit(ctx, req.UserID, sess)
	case dom.OpCompleteEdit:
		return rt.completeEdit(ctx, req, sess)
	case dom.OpHelp:
		return dom.Outcome{Kind: dom.OutcomeHelp}, sess, nil
	case dom.OpCancelOrStop:
		return dom.Outcome{Kind: dom.OutcomeStop, EndSession: true}, sess, nil
	default:
		return dom.Outcome{Kind: dom.OutcomeFallback}, sess, nil
	}
}

// startAdd stages the date; the event text arrives on the next turn
func (rt *Router) startAdd(req dom.Request, sess dom.Session) (dom.Outcome, dom.Session, error) {
	date := req.Slot(dom.SlotDate)
	if date == "" {
		return dom.Outcome{}, sess, perr.MissingSlotf("add request without a date slot")
	}
	sess.CurrEventDate = date
	return dom.Outcome{Kind: dom.OutcomeAddPrompt}, sess, nil
}

func (rt *Router) completeAdd(
	ctx context.Context,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	if sess.CurrEventDate == "" {
		return dom.Outcome{}, sess, perr.BrokenFlowf("event text without a staged date")
	}
	d, err := dates.Parse(sess.CurrEventDate)
	if err != nil {
		sess.CurrEventDate = ""
		return dom.Outcome{}, sess, err
	}
	text := req.Slot(dom.SlotEvent)
	if text == "" {
		return dom.Outcome{}, sess, perr.MissingSlotf("event slot missing")
	}

	if err := rt.Store.Add(ctx, req.UserID, d.DayKey(), d.YearKey(), text); err != nil {
		return dom.Outcome{}, sess, err
	}
	// the staged date is consumed exactly once
	sess.CurrEventDate = ""
	return dom.Outcome{Kind: dom.OutcomeEventAdded}, sess, nil
}

func (rt *Router) retrieve(
	ctx context.Context,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	slot := req.Slot(dom.SlotDate)
	if slot == "" {
		return dom.Outcome{}, sess, perr.MissingSlotf("retrieve without a date slot")
	}
	d, err := dates.Parse(slot)
	if err != nil {
		return dom.Outcome{}, sess, err
	}

	day, err := rt.Store.Day(ctx, req.UserID, d.DayKey())
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	if len(day) == 0 {
		return dom.Outcome{
			Kind:  dom.OutcomeNoEventsForDate,
			Month: int(d.Month),
			Day:   d.Day,
		}, sess, nil
	}

	snap := nav.NewSnapshot(day)
	groups := make([]dom.YearGroup, 0, len(snap.Years()))
	for _, y := range snap.Years() {
		groups = append(groups, dom.YearGroup{Year: y, Events: snap.EventsOf(y)})
	}
	return dom.Outcome{Kind: dom.OutcomeEventList, List: groups}, sess, nil
}

func (rt *Router) startModify(
	ctx context.Context,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	slot := req.Slot(dom.SlotDate)
	if slot == "" {
		return dom.Outcome{}, sess, perr.MissingSlotf("modify without a date slot")
	}
	d, err := dates.Parse(slot)
	if err != nil {
		return dom.Outcome{}, sess, err
	}

	day, err := rt.Store.Day(ctx, req.UserID, d.DayKey())
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	snap := nav.NewSnapshot(day)
	c, step := nav.Start(snap)
	if step.Kind != nav.StepEvent {
		return dom.Outcome{
			Kind:  dom.OutcomeNoEventsForDate,
			Month: int(d.Month),
			Day:   d.Day,
		}, sess, nil
	}

	sess.Day = d.DayKey()
	sess.YearIdx = c.YearIdx
	sess.EventIdx = c.EventIdx
	return dom.EventPrompt(step.Year, step.Event), sess, nil
}

// step runs Next or Prev against a fresh snapshot of the cursor's day
func (rt *Router) step(
	ctx context.Context,
	userID string,
	sess dom.Session,
	move func(nav.Snapshot, nav.Cursor) (nav.Cursor, nav.Step),
) (dom.Outcome, dom.Session, error) {
	snap, c, err := rt.context(ctx, userID, sess)
	if err != nil {
		return dom.Outcome{}, sess, err
	}

	c, step := move(snap, c)
	switch step.Kind {
	case nav.StepEvent:
		sess.YearIdx = c.YearIdx
		sess.EventIdx = c.EventIdx
		return dom.EventPrompt(step.Year, step.Event), sess, nil
	case nav.StepNoMore:
		return dom.Outcome{Kind: dom.OutcomeNoMoreEvents}, sess, nil
	case nav.StepNoPrevious:
		return dom.Outcome{Kind: dom.OutcomeNoPreviousEvents}, sess, nil
	default:
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}
}

func (rt *Router) startDelete(ctx context.Context, userID string, sess dom.Session) (dom.Outcome, dom.Session, error) {
	snap, c, err := rt.context(ctx, userID, sess)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	_, event, ok := snap.At(c)
	if !ok {
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}

	sess.PendingDelete = true
	return dom.Outcome{Kind: dom.OutcomeDeleteConfirm, Event: event}, sess, nil
}

func (rt *Router) confirmDelete(ctx context.Context, userID string, sess dom.Session) (dom.Outcome, dom.Session, error) {
	sess.PendingDelete = false

	snap, c, err := rt.context(ctx, userID, sess)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	year, _, ok := snap.At(c)
	if !ok {
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}

	if _, err := rt.Store.Delete(ctx, userID, sess.Day, year, c.EventIdx); err != nil {
		return dom.Outcome{}, sess, err
	}

	refreshedDay, err := rt.Store.Day(ctx, userID, sess.Day)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	nc, step := nav.AfterDelete(nav.NewSnapshot(refreshedDay), year, c)

	out := dom.Outcome{Kind: dom.OutcomeEventDeleted}
	if step.Kind == nav.StepEvent {
		sess.YearIdx = nc.YearIdx
		sess.EventIdx = nc.EventIdx
		next := dom.EventPrompt(step.Year, step.Event)
		out.Next = &next
	} else {
		next := dom.Outcome{Kind: dom.OutcomeNoMoreEvents}
		out.Next = &next
	}
	return out, sess, nil
}

func (rt *Router) startEdit(ctx context.Context, userID string, sess dom.Session) (dom.Outcome, dom.Session, error) {
	snap, c, err := rt.context(ctx, userID, sess)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	if _, _, ok := snap.At(c); !ok {
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}

	sess.PendingEdit = true
	return dom.Outcome{Kind: dom.OutcomeEditPrompt}, sess, nil
}

func (rt *Router) completeEdit(
	ctx context.Context,
	req dom.Request,
	sess dom.Session,
) (dom.Outcome, dom.Session, error) {
	if !sess.PendingEdit {
		return dom.Outcome{}, sess, perr.BrokenFlowf("edit text without a pending edit")
	}
	text := req.Slot(dom.SlotEvent)
	if text == "" {
		return dom.Outcome{}, sess, perr.MissingSlotf("event slot missing")
	}

	snap, c, err := rt.context(ctx, req.UserID, sess)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	year, _, ok := snap.At(c)
	if !ok {
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}

	ok, err = rt.Store.Update(ctx, req.UserID, sess.Day, year, c.EventIdx, text)
	if err != nil {
		return dom.Outcome{}, sess, err
	}
	if !ok {
		return dom.Outcome{}, sess, perr.NoContextf("cursor no longer matches stored events")
	}
	sess.PendingEdit = false

	out := dom.Outcome{Kind: dom.OutcomeEventUpdated}
	next := dom.EventPrompt(year, text)
	out.Next = &next
	return out, sess, nil
}

// context rebuilds the navigation snapshot for the session cursor. The year
// order and list lengths are always recomputed from the store; the session
// only carries indices.
func (rt *Router) context(ctx context.Context, userID string, sess dom.Session) (nav.Snapshot, nav.Cursor, error) {
	if !sess.HasCursor() {
		return nav.Snapshot{}, nav.Cursor{}, perr.NoContextf("navigation not started")
	}
	day, err := rt.Store.Day(ctx, userID, sess.Day)
	if err != nil {
		return nav.Snapshot{}, nav.Cursor{}, err
	}
	snap := nav.NewSnapshot(day)
	if snap.Empty() {
		return nav.Snapshot{}, nav.Cursor{}, perr.NoContextf("day %s no longer has events", sess.Day)
	}
	return snap, nav.Cursor{YearIdx: sess.YearIdx, EventIdx: sess.EventIdx}, nil
}
