// internal/telemetry/recorder.go
package telemetry

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EntityState — снимок одной движущейся сущности на конец тика.
type EntityState struct {
	ID   uint64
	Kind string
	X, Y float64
	VX   float64
	VY   float64
}

func (e EntityState) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("id", e.ID)
	enc.AddString("kind", e.Kind)
	enc.AddFloat64("x", e.X)
	enc.AddFloat64("y", e.Y)
	enc.AddFloat64("vx", e.VX)
	enc.AddFloat64("vy", e.VY)
	return nil
}

type entityStates []EntityState

func (s entityStates) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range s {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}

// Recorder пишет покадровую трассу движения в JSON-строки.
// Нулевой (nil) Recorder ничего не делает.
type Recorder struct {
	log    *zap.Logger
	closer io.Closer
}

// NewFileRecorder пишет трассу в файл с ротацией: 10MB на файл, 3 резервные копии.
func NewFileRecorder(path string) *Recorder {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}
	r := NewRecorder(zapcore.AddSync(lj))
	r.closer = lj
	return r
}

// NewRecorder пишет трассу в произвольный приёмник.
func NewRecorder(ws zapcore.WriteSyncer) *Recorder {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zapcore.DebugLevel)
	return &Recorder{log: zap.New(core)}
}

// Tick записывает состояние всех сущностей после тика.
func (r *Recorder) Tick(tick int, dt float64, entities []EntityState) {
	if r == nil {
		return
	}
	r.log.Debug("tick",
		zap.Int("tick", tick),
		zap.Float64("dt", dt),
		zap.Array("entities", entityStates(entities)),
	)
}

// Event записывает произвольное событие симуляции.
func (r *Recorder) Event(name string, fields ...zap.Field) {
	if r == nil {
		return
	}
	r.log.Info(name, fields...)
}

// Close сбрасывает буферы и закрывает файл.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	_ = r.log.Sync()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
