package h4

import (
	"io"
	"sync"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"

	"github.com/btkit/hci"
)

const (
	rxQueueSize = 64
	readTimeout = time.Second
)

type h4 struct {
	sp  io.ReadWriteCloser
	rmu sync.Mutex
	wmu sync.Mutex

	asm     *assembler
	rxQueue chan []byte

	done chan struct{}
	cmu  sync.Mutex

	logger hci.Logger
}

// New opens a serial port in H4 framing mode and returns a transport
// whose Read yields exactly one complete HCI packet per call.
func New(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
	// H4 has no flow-control framing of its own; short inter-character
	// timeouts are how chunk boundaries are detected.
	opts.MinimumReadSize = 0
	opts.InterCharacterTimeout = 100

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open serial port")
	}

	rx := make(chan []byte, rxQueueSize)
	h := &h4{
		sp:      sp,
		asm:     newAssembler(rx),
		rxQueue: rx,
		done:    make(chan struct{}),
		logger:  hci.GetLogger().ChildLogger(map[string]interface{}{"subsystem": "h4"}),
	}

	go h.rxLoop()

	return h, nil
}

// Read copies the next complete packet into p.
func (h *h4) Read(p []byte) (int, error) {
	if !h.isOpen() {
		return 0, io.EOF
	}

	h.rmu.Lock()
	defer h.rmu.Unlock()

	select {
	case pkt := <-h.rxQueue:
		if len(p) < len(pkt) {
			return 0, errors.Errorf("buffer too small: %d < %d", len(p), len(pkt))
		}
		if !h.isOpen() {
			return 0, io.EOF
		}
		return copy(p, pkt), nil

	case <-time.After(readTimeout):
		return 0, errors.New("read timeout")
	}
}

func (h *h4) Write(p []byte) (int, error) {
	if !h.isOpen() {
		return 0, io.EOF
	}

	h.wmu.Lock()
	defer h.wmu.Unlock()

	n, err := h.sp.Write(p)
	return n, errors.Wrap(err, "can't write h4")
}

func (h *h4) Close() error {
	h.cmu.Lock()
	defer h.cmu.Unlock()

	select {
	case <-h.done:
		return nil
	default:
		close(h.done)
		h.rmu.Lock()
		err := h.sp.Close()
		h.rmu.Unlock()
		return errors.Wrap(err, "can't close h4")
	}
}

func (h *h4) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return h.sp != nil
	}
}

func (h *h4) rxLoop() {
	tmp := make([]byte, 512)
	for {
		select {
		case <-h.done:
			h.logger.Debug("rx loop stopped")
			return
		default:
		}

		n, err := h.sp.Read(tmp)
		if err != nil || n == 0 {
			continue
		}

		h.asm.Assemble(tmp[:n])
	}
}
