package main

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/unixpickle/statecoll"
)

func TestWriteJSONObject(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONObject(&buf, map[string]interface{}{
		"data": map[string]interface{}{
			"size":   3,
			"values": EncodedList[string]{"a", "b\"", "c"},
		},
		"items": EncodedList[statecoll.Item[string]]{
			{Value: "x", Priority: statecoll.PriorityHigh},
		},
		"empty": EncodedList[int]{},
	})
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Data struct {
			Size   int      `json:"size"`
			Values []string `json:"values"`
		} `json:"data"`
		Items []statecoll.Item[string] `json:"items"`
		Empty []int                    `json:"empty"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if decoded.Data.Size != 3 || !reflect.DeepEqual(decoded.Data.Values, []string{"a", "b\"", "c"}) {
		t.Fatalf("bad data: %+v", decoded.Data)
	}
	if len(decoded.Items) != 1 || decoded.Items[0].Value != "x" ||
		decoded.Items[0].Priority != statecoll.PriorityHigh {
		t.Fatalf("bad items: %+v", decoded.Items)
	}
	if decoded.Empty == nil || len(decoded.Empty) != 0 {
		t.Fatalf("bad empty list: %v", decoded.Empty)
	}
}
