package chrono

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalPackerCreated    = capitan.NewSignal("chrono.packer.created", "Packer instantiated")
	SignalParserCreated    = capitan.NewSignal("chrono.parser.created", "Text parser instantiated")
	SignalFormatterCreated = capitan.NewSignal("chrono.formatter.created", "Text formatter instantiated")
	SignalReject           = capitan.NewSignal("chrono.reject", "Strict-mode validation rejection")
	SignalIngestStart      = capitan.NewSignal("chrono.ingest.start", "Ingest operation beginning")
	SignalIngestComplete   = capitan.NewSignal("chrono.ingest.complete", "Ingest operation finished")
	SignalEmitStart        = capitan.NewSignal("chrono.emit.start", "Emit operation beginning")
	SignalEmitComplete     = capitan.NewSignal("chrono.emit.complete", "Emit operation finished")
)

// Keys for typed event data.
var (
	KeyKind        = capitan.NewStringKey("kind")
	KeyEncoding    = capitan.NewStringKey("encoding")
	KeyMode        = capitan.NewStringKey("mode")
	KeyLayout      = capitan.NewStringKey("layout")
	KeySeparator   = capitan.NewStringKey("separator")
	KeyComponent   = capitan.NewStringKey("component")
	KeyValue       = capitan.NewIntKey("value")
	KeyInput       = capitan.NewStringKey("input")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitPackerCreated emits an event when a packer variant is first built.
func emitPackerCreated(kind string, enc Encoding, mode Mode) {
	capitan.Emit(context.Background(), SignalPackerCreated,
		KeyKind.Field(kind),
		KeyEncoding.Field(string(enc)),
		KeyMode.Field(mode.String()),
	)
}

// emitParserCreated emits an event when a parser variant is first built.
func emitParserCreated(kind, layout string, sep byte, mode Mode) {
	capitan.Emit(context.Background(), SignalParserCreated,
		KeyKind.Field(kind),
		KeyLayout.Field(layout),
		KeySeparator.Field(separatorLabel(sep)),
		KeyMode.Field(mode.String()),
	)
}

// emitFormatterCreated emits an event when a formatter variant is first
// built.
func emitFormatterCreated(kind, layout string, sep byte, mode Mode) {
	capitan.Emit(context.Background(), SignalFormatterCreated,
		KeyKind.Field(kind),
		KeyLayout.Field(layout),
		KeySeparator.Field(separatorLabel(sep)),
		KeyMode.Field(mode.String()),
	)
}

// emitReject emits an event for a strict-mode component rejection.
func emitReject(source, component string, value int64) {
	capitan.Error(context.Background(), SignalReject,
		KeyKind.Field(source),
		KeyComponent.Field(component),
		KeyValue.Field(int(value)),
	)
}

// emitRejectText emits an event for a strict-mode text rejection.
func emitRejectText(source, field, input string) {
	capitan.Error(context.Background(), SignalReject,
		KeyKind.Field(source),
		KeyComponent.Field(field),
		KeyInput.Field(input),
	)
}

// emitIngestStart emits an event when a processor ingest begins.
func emitIngestStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalIngestStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitIngestComplete emits an event when a processor ingest finishes.
func emitIngestComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fields int, err error) {
	data := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		data = append(data, KeyError.Field(err))
		capitan.Error(ctx, SignalIngestComplete, data...)
	} else {
		capitan.Emit(ctx, SignalIngestComplete, data...)
	}
}

// emitEmitStart emits an event when a processor emit begins.
func emitEmitStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEmitStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEmitComplete emits an event when a processor emit finishes.
func emitEmitComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fields int, err error) {
	data := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		data = append(data, KeyError.Field(err))
		capitan.Error(ctx, SignalEmitComplete, data...)
	} else {
		capitan.Emit(ctx, SignalEmitComplete, data...)
	}
}

// separatorLabel renders a separator byte for signal fields.
func separatorLabel(sep byte) string {
	if sep == NoSeparator {
		return "none"
	}
	return string(rune(sep))
}
