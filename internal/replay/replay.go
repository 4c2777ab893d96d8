// internal/replay/replay.go
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/input"

	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion is bumped whenever Log changes shape.
const FormatVersion = 1

var (
	ErrEmptyLog        = errors.New("replay log has no frames")
	ErrDesync          = errors.New("replay desync")
	ErrVersionMismatch = errors.New("unsupported replay version")
)

// Frame is one tick of recorded input with the checksum the world had
// after applying it.
type Frame struct {
	DeltaTime float64     `msgpack:"dt"`
	Input     input.Frame `msgpack:"in"`
	Checksum  uint64      `msgpack:"sum"`
}

// Log is everything needed to re-run a match.
type Log struct {
	Version int            `msgpack:"v"`
	Seed    int64          `msgpack:"seed"`
	Config  *config.Config `msgpack:"cfg"`
	Frames  []Frame        `msgpack:"frames"`
}

// Recorder collects frames while a match runs.
type Recorder struct {
	log Log
}

func NewRecorder(seed int64, cfg *config.Config) *Recorder {
	return &Recorder{log: Log{Version: FormatVersion, Seed: seed, Config: cfg}}
}

// Record appends one tick.
func (r *Recorder) Record(deltaTime float64, in input.Frame, checksum uint64) {
	r.log.Frames = append(r.log.Frames, Frame{DeltaTime: deltaTime, Input: in, Checksum: checksum})
}

// Log returns the recorded log. It shares memory with the recorder.
func (r *Recorder) Log() *Log {
	return &r.log
}

// Encode writes the log as msgpack.
func (l *Log) Encode(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(l); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a msgpack log.
func Decode(r io.Reader) (*Log, error) {
	var l Log
	if err := msgpack.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if l.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, l.Version, FormatVersion)
	}
	if l.Config == nil {
		l.Config = config.Default()
	}
	return &l, nil
}

// Save writes the log to path.
func (l *Log) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := l.Encode(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write replay file %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a log from path.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file %s: %w", path, err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Stepper is a simulation that can be driven frame by frame.
type Stepper interface {
	Update(deltaTime float64, in input.Frame)
	Checksum() uint64
}

// Verify re-runs the log on a fresh simulation and reports the first tick
// whose checksum differs from the recording.
func Verify(l *Log, newSim func(seed int64, cfg *config.Config) Stepper) error {
	if len(l.Frames) == 0 {
		return ErrEmptyLog
	}
	sim := newSim(l.Seed, l.Config)
	for i, f := range l.Frames {
		sim.Update(f.DeltaTime, f.Input)
		if got := sim.Checksum(); got != f.Checksum {
			return fmt.Errorf("%w at tick %d: recorded %016x, replayed %016x", ErrDesync, i, f.Checksum, got)
		}
	}
	return nil
}
