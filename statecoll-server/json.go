package main

import (
	"context"
	"encoding/json"
	"io"
)

// A JSONWriter encodes itself directly to a stream.
type JSONWriter interface {
	WriteJSON(w io.Writer) error
}

// WriteJSONObject encodes obj, streaming any values which implement
// JSONWriter and recursing into nested objects.
func WriteJSONObject(w io.Writer, obj map[string]interface{}) error {
	if _, err := w.Write([]byte("{")); err != nil {
		return err
	}
	first := true
	for k, v := range obj {
		if first {
			first = false
		} else {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}

		encKey, err := json.Marshal(k)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(encKey, ':')); err != nil {
			return err
		}

		switch v := v.(type) {
		case JSONWriter:
			if err := v.WriteJSON(w); err != nil {
				return err
			}
		case map[string]interface{}:
			if err := WriteJSONObject(w, v); err != nil {
				return err
			}
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := w.Write(encoded); err != nil {
				return err
			}
		}
	}
	if _, err := w.Write([]byte("}")); err != nil {
		return err
	}
	return nil
}

// EncodedList is a JSON array whose elements are encoded on a background
// Goroutine while earlier ones are written.
type EncodedList[T any] []T

func (e EncodedList[T]) WriteJSON(w io.Writer) error {
	encodedStream := make(chan []byte, 32)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer close(encodedStream)
		for _, x := range e {
			data, err := json.Marshal(x)
			if err != nil {
				panic(err)
			}
			select {
			case encodedStream <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	if _, err := w.Write([]byte("[")); err != nil {
		return err
	}
	first := true
	for encoded := range encodedStream {
		if first {
			first = false
		} else {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
		if _, err := w.Write(encoded); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}
