// Package capture owns the hardware audio input and turns the raw
// device callback stream into fixed-size analysis windows.
package capture

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
)

const (
	// DefaultWindowSize holds many full cycles of the low E string even
	// at 48 kHz.
	DefaultWindowSize = 8192
	// DefaultHop overlaps windows so feedback stays responsive; a new
	// window is ready roughly every 45 ms at 44.1 kHz.
	DefaultHop = 2048
)

// Device is one selectable capture source. The name doubles as the
// opaque identifier; an empty name means the system default.
type Device struct {
	Name string
}

// WindowFunc receives each completed analysis window on the session's
// processing goroutine. The slice is only valid for the duration of the
// call.
type WindowFunc func(samples []float32, sampleRate float64)

// Session owns at most one exclusive malgo capture device. Start tears
// down any previous device first; Stop is idempotent and safe to call on
// a session that never started.
type Session struct {
	ctx *malgo.AllocatedContext

	mu       sync.Mutex
	device   *malgo.Device
	stop     chan struct{}
	done     chan struct{}
	onWindow WindowFunc

	windowSize int
	hop        int
}

func NewSession(ctx *malgo.AllocatedContext, onWindow WindowFunc) *Session {
	return &Session{
		ctx:        ctx,
		onWindow:   onWindow,
		windowSize: DefaultWindowSize,
		hop:        DefaultHop,
	}
}

// Devices lists the available capture devices.
func (s *Session) Devices() ([]Device, error) {
	infos, err := s.ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("enumerate capture devices: %w", err)
	}
	devices := make([]Device, 0, len(infos))
	for i := range infos {
		name := infos[i].Name()
		if name == "" {
			name = "Unknown input"
		}
		devices = append(devices, Device{Name: name})
	}
	return devices, nil
}

// Start begins capture from the named device, or from the system default
// when deviceName is empty. Any running capture is stopped first. On
// failure no resources are held and the session stays stopped.
func (s *Session) Start(deviceName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	config := malgo.DefaultDeviceConfig(malgo.Capture)
	config.Capture.Format = malgo.FormatF32
	config.Capture.Channels = 1
	config.SampleRate = 44100
	config.Alsa.NoMMap = 1

	if deviceName != "" {
		infos, err := s.ctx.Devices(malgo.Capture)
		if err != nil {
			return fmt.Errorf("enumerate capture devices: %w", err)
		}
		found := false
		for i := range infos {
			if infos[i].Name() == deviceName {
				info := infos[i]
				config.Capture.DeviceID = info.ID.Pointer()
				if rate := preferredSampleRate(&info); rate > 0 {
					config.SampleRate = rate
				}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("capture device %q not found", deviceName)
		}
	}

	samplesCh := make(chan []float32, 8)
	callbacks := malgo.DeviceCallbacks{
		Data: func(output, input []byte, frameCount uint32) {
			if len(input) == 0 {
				return
			}
			samples := bytesToFloat32Slice(input)
			buf := make([]float32, len(samples))
			copy(buf, samples)
			select {
			case samplesCh <- buf:
			default:
			}
		},
	}

	device, err := malgo.InitDevice(s.ctx.Context, config, callbacks)
	if err != nil {
		return fmt.Errorf("init device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("start device: %w", err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	s.device = device
	s.stop = stop
	s.done = done

	go s.process(samplesCh, float64(config.SampleRate), stop, done)
	return nil
}

// process drains the sample channel into analysis windows until stop
// closes. onWindow is invoked here, on the session's own goroutine.
func (s *Session) process(samplesCh <-chan []float32, sampleRate float64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	w := newWindower(s.windowSize, s.hop)
	for {
		select {
		case <-stop:
			return
		case buf := <-samplesCh:
			for _, win := range w.feed(buf) {
				s.onWindow(win, sampleRate)
			}
		}
	}
}

// Stop signals the processing loop to exit and releases the hardware
// device once it has drained. Safe to call repeatedly, before any
// successful Start, and from inside the window callback itself; a
// window already in flight may still be delivered after Stop returns.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Running reports whether a capture session is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Session) stopLocked() {
	if s.stop == nil {
		return
	}
	device := s.device
	stop := s.stop
	done := s.done
	s.device = nil
	s.stop = nil
	s.done = nil
	close(stop)
	// Waiting for the processing goroutine here would deadlock when the
	// window callback itself calls Stop, so the device is released off
	// this call path once the goroutine drains.
	go func() {
		if device != nil {
			_ = device.Stop()
		}
		<-done
		if device != nil {
			device.Uninit()
		}
	}()
}
