package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/gesture-arcade/core"
)

// Feed frame encodings
const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)

// ErrInvalidFeed is returned by FeedConfig.Validate
var ErrInvalidFeed = errors.New("invalid feed config")

// FeedConfig is parsed from ARCADE_FEED_* by the config package
type FeedConfig struct {
	URL         string        `env:"URL" envDefault:"ws://127.0.0.1:8765/landmarks"`
	Encoding    string        `env:"ENCODING" envDefault:"json"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"3s"`
	StaleAfter  time.Duration `env:"STALE_AFTER" envDefault:"500ms"`
	Mirror      bool          `env:"MIRROR"`
}

// DefaultFeedConfig returns the values the env tags default to
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		URL:         "ws://127.0.0.1:8765/landmarks",
		Encoding:    EncodingJSON,
		DialTimeout: 3 * time.Second,
		StaleAfter:  500 * time.Millisecond,
	}
}

// Validate checks the encoding and, when set, the URL scheme
func (c FeedConfig) Validate() error {
	switch c.Encoding {
	case EncodingJSON, EncodingMsgpack:
	default:
		return fmt.Errorf("%w: encoding %q", ErrInvalidFeed, c.Encoding)
	}
	if c.URL == "" {
		return nil
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidFeed, u.Scheme)
	}
	return nil
}

// hello is the first message sent after connecting
type hello struct {
	Type     string `json:"type"`
	Session  string `json:"session"`
	Encoding string `json:"encoding"`
}

// received pairs a frame with its local arrival time
type received struct {
	frame Frame
	at    time.Time
}

// Feed is a websocket landmark stream from an external hand-tracking process
// A reader goroutine publishes the latest frame; Read never blocks
type Feed struct {
	ID  string
	cfg FeedConfig
	now func() time.Time

	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes and err
	err    error
	latest atomic.Pointer[received]
	done   chan struct{}
	closed atomic.Bool
}

// NewFeed creates an unopened feed with a fresh session id
func NewFeed(cfg FeedConfig) *Feed {
	return &Feed{
		ID:  uuid.New().String(),
		cfg: cfg,
		now: time.Now,
	}
}

// Open dials the feed, announces the session, and starts reading
// A closed or failed feed may be opened again; the previous connection's state is dropped
func (f *Feed) Open(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: f.cfg.DialTimeout}
	header := http.Header{"X-Session-Id": []string{f.ID}}

	ws, _, err := dialer.DialContext(ctx, f.cfg.URL, header)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrCaptureUnavailable, f.cfg.URL, err)
	}
	if err := ws.WriteJSON(hello{Type: "hello", Session: f.ID, Encoding: f.cfg.Encoding}); err != nil {
		ws.Close()
		return fmt.Errorf("%w: hello: %v", ErrCaptureUnavailable, err)
	}

	f.mu.Lock()
	f.err = nil
	f.mu.Unlock()
	f.latest.Store(nil)
	f.closed.Store(false)

	f.ws = ws
	f.done = make(chan struct{})
	core.Go(f.readLoop)
	log.Printf("feed %s connected to %s (%s)", f.ID, f.cfg.URL, f.cfg.Encoding)
	return nil
}

func (f *Feed) readLoop() {
	defer close(f.done)

	for {
		mt, raw, err := f.ws.ReadMessage()
		if err != nil {
			if !f.closed.Load() && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed %s read error: %v", f.ID, err)
			}
			f.fail(err)
			return
		}

		frame, err := decodeFrame(mt, raw)
		if err != nil {
			log.Printf("feed %s bad frame: %v", f.ID, err)
			continue
		}
		f.latest.Store(&received{frame: frame, at: f.now()})
	}
}

// decodeFrame accepts JSON text or msgpack binary messages regardless of the announced encoding
func decodeFrame(mt int, raw []byte) (Frame, error) {
	var frame Frame
	var err error
	switch mt {
	case websocket.TextMessage:
		err = json.Unmarshal(raw, &frame)
	case websocket.BinaryMessage:
		err = msgpack.Unmarshal(raw, &frame)
	default:
		err = fmt.Errorf("unexpected message type %d", mt)
	}
	return frame, err
}

func (f *Feed) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = fmt.Errorf("%w: %v", ErrCaptureClosed, err)
	}
}

// Read returns the latest frame; ErrNoFrame when none arrived yet or it is stale
func (f *Feed) Read() (Frame, error) {
	f.mu.Lock()
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return Frame{}, err
	}
	if f.ws == nil {
		return Frame{}, ErrCaptureUnavailable
	}

	r := f.latest.Load()
	if r == nil {
		return Frame{}, ErrNoFrame
	}
	if f.cfg.StaleAfter > 0 && f.now().Sub(r.at) > f.cfg.StaleAfter {
		return Frame{}, ErrNoFrame
	}
	return r.frame, nil
}

// Close sends a close frame, drops the connection, and waits for the reader
func (f *Feed) Close() error {
	if f.ws == nil || !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	_ = f.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	f.mu.Unlock()

	err := f.ws.Close()
	<-f.done
	log.Printf("feed %s closed", f.ID)
	return err
}
