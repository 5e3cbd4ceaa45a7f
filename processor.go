package chrono

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register temporal field tags with sentinel
	sentinel.Tag("chrono.date")
	sentinel.Tag("chrono.time")
}

// Processor provides content-type aware serialization with temporal
// field validation. String fields tagged chrono.date or chrono.time
// carry fixed-width temporal text; the tag value is the concrete
// pattern, e.g.
//
//	type Trade struct {
//	    Day   string `json:"day" chrono.date:"YYYY-MM-DD"`
//	    Stamp string `json:"stamp" chrono.time:"HH:MM:SS.FFF"`
//	}
//
// Receive unmarshals and checks every tagged field against its
// pattern; Send checks and marshals. The processor's validation mode
// decides what a bad field does: ModeStrict returns the parse error,
// ModeSentinel blanks the field, ModeUnchecked passes it through.
//
// Processors are safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec Codec
	mode  Mode

	// Per-type field plans (immutable after construction)
	dateFields []dateFieldPlan
	timeFields []timeFieldPlan

	// Type metadata
	typeName string
}

// dateFieldPlan binds one tagged struct field to its parser.
type dateFieldPlan struct {
	index  []int  // reflect.Value.FieldByIndex access path
	name   string // field name for error messages
	parser *DateParser[string]
}

// timeFieldPlan binds one tagged struct field to its parser.
type timeFieldPlan struct {
	index  []int
	name   string
	parser *TimeParser[string]
}

// NewProcessor creates a new Processor for type T using the given
// codec and validation mode. Tag patterns are resolved once here;
// an unknown pattern is a construction error regardless of mode.
func NewProcessor[T Cloner[T]](codec Codec, mode Mode) (*Processor[T], error) {
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}

	spec := sentinel.Scan[T]()
	p := &Processor[T]{
		codec:    codec,
		mode:     mode,
		typeName: spec.TypeName,
	}

	for _, field := range spec.Fields {
		if field.ReflectType.Kind() != reflect.String {
			continue
		}
		if pattern, ok := field.Tags["chrono.date"]; ok {
			id, sep, err := DateLayoutOf(pattern)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			parser, err := NewDateStringParser(id, sep, mode)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			p.dateFields = append(p.dateFields, dateFieldPlan{
				index:  field.Index,
				name:   field.Name,
				parser: parser,
			})
		}
		if pattern, ok := field.Tags["chrono.time"]; ok {
			id, sep, err := TimeLayoutOf(pattern)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			parser, err := NewTimeStringParser(id, sep, mode)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			p.timeFields = append(p.timeFields, timeFieldPlan{
				index:  field.Index,
				name:   field.Name,
				parser: parser,
			})
		}
	}

	return p, nil
}

// Use returns a cached processor or builds a new one.
// The processor is cached by type, codec content type, and mode.
// T must implement Cloner[T].
func Use[T Cloner[T]](codec Codec, mode Mode) (*Processor[T], error) {
	key := registryKey{
		kind: "processor:" + codec.ContentType(),
		mode: mode,
		typ:  reflect.TypeFor[T](),
	}
	return cached(key, func() (*Processor[T], error) {
		return NewProcessor[T](codec, mode)
	})
}

// Mode returns the processor's validation mode.
func (p *Processor[T]) Mode() Mode { return p.mode }

// ContentType returns the underlying codec's content type.
func (p *Processor[T]) ContentType() string { return p.codec.ContentType() }

// fieldCount returns the number of tagged temporal fields.
func (p *Processor[T]) fieldCount() int {
	return len(p.dateFields) + len(p.timeFields)
}

// Receive unmarshals data and checks every tagged temporal field
// against its pattern. Use for data coming from external sources
// (API requests, events, files).
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitIngestStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitIngestComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), p.fieldCount(), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = fmt.Errorf("unmarshal: %w", err)
		return nil, retErr
	}

	if err := p.checkFields(&obj); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

// Send checks every tagged temporal field and marshals the result.
// The object is cloned first, so ModeSentinel blanking never mutates
// the caller's value. Use for data going to external consumers.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEmitStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitEmitComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), p.fieldCount(), retErr)
	}()

	if obj == nil {
		data, err := p.codec.Marshal(nil)
		retErr = err
		return data, err
	}

	clone := (*obj).Clone()
	if err := p.checkFields(&clone); err != nil {
		retErr = err
		return nil, retErr
	}

	data, err := p.codec.Marshal(&clone)
	if err != nil {
		retErr = fmt.Errorf("marshal: %w", err)
		return nil, retErr
	}
	return data, nil
}

// checkFields walks the tagged fields of obj. Empty fields are
// treated as absent and skipped.
func (p *Processor[T]) checkFields(obj *T) error {
	if p.mode == ModeUnchecked {
		return nil
	}

	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.dateFields {
		field := rv.FieldByIndex(plan.index)
		s := field.String()
		if s == "" {
			continue
		}
		if len(s) != plan.parser.Layout().Length {
			if p.mode == ModeStrict {
				return fmt.Errorf("field %s: %w", plan.name, newFormatError("length", s))
			}
			field.SetString("")
			continue
		}
		year, _, _, err := plan.parser.Parse(s)
		if err != nil {
			return fmt.Errorf("field %s: %w", plan.name, err)
		}
		if year == InvalidComponent {
			field.SetString("")
		}
	}

	for _, plan := range p.timeFields {
		field := rv.FieldByIndex(plan.index)
		s := field.String()
		if s == "" {
			continue
		}
		if len(s) != plan.parser.Layout().Length {
			if p.mode == ModeStrict {
				return fmt.Errorf("field %s: %w", plan.name, newFormatError("length", s))
			}
			field.SetString("")
			continue
		}
		hour, _, _, _, err := plan.parser.ParseNanoTime(s)
		if err != nil {
			return fmt.Errorf("field %s: %w", plan.name, err)
		}
		if hour == InvalidComponent {
			field.SetString("")
		}
	}

	return nil
}
