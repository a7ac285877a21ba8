package computeruse

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 800

	// actionSettle gives the page a beat after input before the screenshot.
	actionSettle = 300 * time.Millisecond
)

// Browser drives a headless Chrome instance through chromedp. One Browser
// serves one session; actions execute strictly in order.
type Browser struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
	viewport    Viewport
}

// NewBrowser launches a headless browser. Callers must Close it.
func NewBrowser(parent context.Context) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	viewport := Viewport{Width: defaultViewportWidth, Height: defaultViewportHeight}
	if err := chromedp.Run(ctx, chromedp.EmulateViewport(int64(viewport.Width), int64(viewport.Height))); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Browser{
		ctx:         ctx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
		viewport:    viewport,
	}, nil
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancelCtx()
	b.cancelAlloc()
}

// Viewport returns the emulated window size.
func (b *Browser) Viewport() Viewport {
	return b.viewport
}

// mapKey translates a key name from the wire protocol into the chromedp key
// sequence. Unknown names pass through as literal characters.
func mapKey(name string) string {
	switch strings.ToLower(name) {
	case "enter", "return":
		return kb.Enter
	case "tab":
		return kb.Tab
	case "backspace":
		return kb.Backspace
	case "delete":
		return kb.Delete
	case "escape", "esc":
		return kb.Escape
	case "up", "arrowup":
		return kb.ArrowUp
	case "down", "arrowdown":
		return kb.ArrowDown
	case "left", "arrowleft":
		return kb.ArrowLeft
	case "right", "arrowright":
		return kb.ArrowRight
	case "home":
		return kb.Home
	case "end":
		return kb.End
	case "pageup":
		return kb.PageUp
	case "pagedown":
		return kb.PageDown
	default:
		return name
	}
}

// action translates a ComputerCall into chromedp actions.
func (b *Browser) action(call *ComputerCall) (chromedp.Action, error) {
	switch call.Type {
	case ActionVisitURL:
		return chromedp.Navigate(call.URL), nil
	case ActionWebSearch:
		return chromedp.Navigate("https://duckduckgo.com/?q=" + url.QueryEscape(call.Query)), nil
	case ActionClick:
		return chromedp.MouseClickXY(float64(call.X), float64(call.Y)), nil
	case ActionDoubleClick:
		return chromedp.MouseClickXY(float64(call.X), float64(call.Y), chromedp.ClickCount(2)), nil
	case ActionType:
		return input.InsertText(call.Text), nil
	case ActionKeypress:
		var actions []chromedp.Action
		for _, key := range call.Keys {
			actions = append(actions, chromedp.KeyEvent(mapKey(key)))
		}
		return chromedp.Tasks(actions), nil
	case ActionScroll:
		js := fmt.Sprintf("window.scrollBy(%d, %d)", call.DeltaX, call.DeltaY)
		return chromedp.Evaluate(js, nil), nil
	case ActionBack:
		return chromedp.NavigateBack(), nil
	case ActionWait:
		d := time.Duration(call.DurationMs) * time.Millisecond
		if d <= 0 {
			d = time.Second
		}
		return chromedp.Sleep(d), nil
	case ActionTerminate:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", call.Type)
	}
}

// Execute runs one call and returns the resulting observation. Action
// failures land in Execution, not the error return; the error return is for
// a dead browser.
func (b *Browser) Execute(ctx context.Context, call *ComputerCall) (*Observation, error) {
	obs := &Observation{
		CallID:    call.CallID,
		Viewport:  b.viewport,
		Timestamp: time.Now().UTC(),
		Execution: Execution{Status: ExecutionSuccess},
	}

	if call.Type == ActionTerminate {
		b.Close()
		return obs, nil
	}

	action, err := b.action(call)
	if err != nil {
		obs.Execution = Execution{Status: ExecutionError, ErrorType: "invalid_action", ErrorMessage: err.Error()}
		return obs, nil
	}

	runCtx := b.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(b.ctx, deadline)
		defer cancel()
	}

	if err := chromedp.Run(runCtx, action, chromedp.Sleep(actionSettle)); err != nil {
		obs.Execution = Execution{Status: ExecutionError, ErrorType: "action_failed", ErrorMessage: err.Error()}
	}

	var shot []byte
	var location, title string
	if err := chromedp.Run(runCtx,
		chromedp.Location(&location),
		chromedp.Title(&title),
		chromedp.CaptureScreenshot(&shot),
	); err != nil {
		if obs.Execution.Status == ExecutionSuccess {
			obs.Execution = Execution{Status: ExecutionError, ErrorType: "observe_failed", ErrorMessage: err.Error()}
		}
		return obs, nil
	}

	obs.URL = location
	obs.Title = title
	obs.ScreenshotB64 = base64.StdEncoding.EncodeToString(shot)
	return obs, nil
}
