package statecoll

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A ListKind selects which list implementation a server uses.
type ListKind string

const (
	SinglyList ListKind = "singly"
	DoublyList ListKind = "doubly"
)

// ContainerStats describes a container hosted by a statecoll server.
type ContainerStats struct {
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	Size            int    `json:"size"`
	Mutations       int64  `json:"mutations"`
	RecentMutations int64  `json:"recentMutations"`
}

// A Client makes API calls to a statecoll server.
//
// The server is identified as a URL, such as "http://myserver.com:8080/".
// Endpoint paths are appended to the path of the URL.
type Client struct {
	URL *url.URL
}

// NewClient creates a Client for the server at baseURL.
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "new client")
	}
	return &Client{URL: u}, nil
}

// List gets a handle on a named remote list. The list is created on the
// server when it is first modified.
func (c *Client) List(kind ListKind, name string) *RemoteList {
	return &RemoteList{client: c, Kind: kind, Name: name}
}

// PriorityQueue gets a handle on a named remote priority queue.
func (c *Client) PriorityQueue(name string) *RemotePriorityQueue {
	return &RemotePriorityQueue{client: c, Name: name}
}

// Stats gets the statistics of every non-empty container on the server.
func (c *Client) Stats() ([]*ContainerStats, error) {
	var response []*ContainerStats
	err := c.get("/stats", nil, &response)
	return response, err
}

// A RemoteList is a list of strings stored on a statecoll server.
type RemoteList struct {
	Kind ListKind
	Name string

	client *Client
}

// InsertFirst adds a value at the head of the list and returns the new
// size.
func (r *RemoteList) InsertFirst(value string) (int, error) {
	var size int
	err := r.client.postForm(r.path("insert_first"), r.query(), url.Values{"value": {value}}, &size)
	return size, err
}

// InsertLast adds a value at the end of the list and returns the new size.
func (r *RemoteList) InsertLast(value string) (int, error) {
	var size int
	err := r.client.postForm(r.path("insert_last"), r.query(), url.Values{"value": {value}}, &size)
	return size, err
}

// InsertLastBatch atomically appends values to the list and returns the
// new size.
func (r *RemoteList) InsertLastBatch(values []string) (int, error) {
	var size int
	err := r.client.postJSON(r.path("insert_last_batch"), r.query(), values, &size)
	return size, err
}

// DeleteFirst removes the head of the list. If the list was empty, the
// second return value is false.
func (r *RemoteList) DeleteFirst() (string, bool, error) {
	return r.client.getValue(r.path("delete_first"), r.query())
}

// DeleteLast removes the end of the list.
func (r *RemoteList) DeleteLast() (string, bool, error) {
	return r.client.getValue(r.path("delete_last"), r.query())
}

// Clear empties the list.
func (r *RemoteList) Clear() error {
	return r.client.get(r.path("clear"), r.query(), nil)
}

// Items gets the current contents of the list.
func (r *RemoteList) Items() (*ListState[string], error) {
	var response ListState[string]
	if err := r.client.get(r.path("items"), r.query(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *RemoteList) path(endpoint string) string {
	return "/" + string(r.Kind) + "/" + endpoint
}

func (r *RemoteList) query() url.Values {
	return url.Values{"name": {r.Name}}
}

// A RemotePriorityQueue is a priority queue of strings stored on a
// statecoll server.
type RemotePriorityQueue struct {
	Name string

	client *Client
}

// Enqueue adds a value and returns the new queue size.
func (r *RemotePriorityQueue) Enqueue(value string, priority Priority) (int, error) {
	var size int
	form := url.Values{
		"value":    {value},
		"priority": {strconv.Itoa(int(priority))},
	}
	err := r.client.postForm("/pqueue/enqueue", r.query(), form, &size)
	return size, err
}

// EnqueueBatch atomically adds values with the same priority.
func (r *RemotePriorityQueue) EnqueueBatch(values []string, priority Priority) (int, error) {
	var size int
	query := r.query()
	query.Set("priority", strconv.Itoa(int(priority)))
	err := r.client.postJSON("/pqueue/enqueue_batch", query, values, &size)
	return size, err
}

// Dequeue removes the first value. If the queue was empty, the second
// return value is false.
func (r *RemotePriorityQueue) Dequeue() (string, bool, error) {
	return r.client.getValue("/pqueue/dequeue", r.query())
}

// Peek gets the first value without removing it.
func (r *RemotePriorityQueue) Peek() (string, bool, error) {
	return r.client.getValue("/pqueue/peek", r.query())
}

// Clear empties the queue.
func (r *RemotePriorityQueue) Clear() error {
	return r.client.get("/pqueue/clear", r.query(), nil)
}

// Items gets the queue's items in dequeue order.
func (r *RemotePriorityQueue) Items() ([]Item[string], error) {
	var response []Item[string]
	err := r.client.get("/pqueue/items", r.query(), &response)
	return response, err
}

func (r *RemotePriorityQueue) query() url.Values {
	return url.Values{"name": {r.Name}}
}

func (c *Client) getValue(path string, query url.Values) (string, bool, error) {
	var response struct {
		Value *string `json:"value"`
		Done  bool    `json:"done"`
	}
	if err := c.get(path, query, &response); err != nil {
		return "", false, err
	}
	if response.Value == nil {
		return "", false, nil
	}
	return *response.Value, true, nil
}

func (c *Client) get(path string, query url.Values, output interface{}) error {
	resp, err := http.Get(c.endpoint(path, query))
	if err := c.handleResponse(resp, err, output); err != nil {
		return errors.Wrap(err, "get "+path)
	}
	return nil
}

func (c *Client) postForm(path string, query, form url.Values, output interface{}) error {
	postBody := strings.NewReader(form.Encode())
	return c.post(path, query, "application/x-www-form-urlencoded", postBody, output)
}

func (c *Client) postJSON(path string, query url.Values, input, output interface{}) error {
	data, err := json.Marshal(input)
	if err != nil {
		return errors.Wrap(err, "post "+path)
	}
	return c.post(path, query, "application/json", bytes.NewReader(data), output)
}

func (c *Client) post(path string, query url.Values, contentType string, input io.Reader,
	output interface{}) error {
	resp, err := http.Post(c.endpoint(path, query), contentType, input)
	if err := c.handleResponse(resp, err, output); err != nil {
		return errors.Wrap(err, "post "+path)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	reqURL := *c.URL
	reqURL.Path = strings.TrimSuffix(reqURL.Path, "/") + path
	reqURL.RawQuery = query.Encode()
	return reqURL.String()
}

func (c *Client) handleResponse(resp *http.Response, err error, output interface{}) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var response struct {
		Error *string     `json:"error"`
		Data  interface{} `json:"data"`
	}
	response.Data = output
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return err
	} else if response.Error != nil {
		return errors.New("remote error: " + *response.Error)
	} else {
		return nil
	}
}
