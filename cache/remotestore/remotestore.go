// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remotestore implements the remote key-value cache persistence
// layer: a "hiredis-style" SET/GET/EXISTS/AUTH/
// FLUSHALL/PING protocol, carried here over a persistent
// github.com/gorilla/websocket connection as small JSON command frames
// rather than a hand-rolled RESP/Redis wire format. Every failure mode — dial, auth, protocol — is
// reported as an error a caller should treat as non-fatal CacheIO:
// log a warning and continue as if the remote layer were absent.
package remotestore

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/singleflight"
)

// Prefix distinguishes the two cache kinds sharing one remote keyspace,
// matching the exact-cache / geometry-cache prefixes used elsewhere.
type Prefix string

const (
	PrefixExact    Prefix = "CGAL-"
	PrefixGeometry Prefix = "GEOM-"
)

type command struct {
	Cmd   string `json:"cmd"`
	Key   string `json:"key,omitempty"`
	Value []byte `json:"value,omitempty"`
	Pass  string `json:"pass,omitempty"`
}

type reply struct {
	OK     bool   `json:"ok"`
	Value  []byte `json:"value,omitempty"`
	Exists bool   `json:"exists,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Client is a connection to a remote KV cache server.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn

	// fetch collapses concurrent Gets for the same key into one
	// round trip: several evaluator goroutines racing to populate the
	// same fingerprint should not each pay the network latency.
	fetch singleflight.Group
}

// Dial opens a websocket connection to url (e.g. "ws://host:port/cache").
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) roundTrip(cmd command) (reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := c.conn.WriteJSON(cmd); err != nil {
		return reply{}, err
	}
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var r reply
	if err := c.conn.ReadJSON(&r); err != nil {
		return reply{}, err
	}
	if !r.OK && r.Error != "" {
		return r, errors.New("remotestore: " + r.Error)
	}
	return r, nil
}

// Auth sends an AUTH command with the given password.
func (c *Client) Auth(password string) error {
	_, err := c.roundTrip(command{Cmd: "AUTH", Pass: password})
	return err
}

// Ping sends a PING and expects an OK reply; used as a cheap liveness
// probe before a batch of SET calls.
func (c *Client) Ping() error {
	_, err := c.roundTrip(command{Cmd: "PING"})
	return err
}

// Set stores value under prefix+key.
func (c *Client) Set(prefix Prefix, key string, value []byte) error {
	_, err := c.roundTrip(command{Cmd: "SET", Key: string(prefix) + key, Value: value})
	return err
}

// Get retrieves the value under prefix+key; ok is false if absent.
// Concurrent Gets for the same prefix+key share a single round trip.
func (c *Client) Get(prefix Prefix, key string) (value []byte, ok bool, err error) {
	type result struct {
		value []byte
		ok    bool
	}
	v, err, _ := c.fetch.Do(string(prefix)+key, func() (any, error) {
		r, err := c.roundTrip(command{Cmd: "GET", Key: string(prefix) + key})
		if err != nil {
			return result{}, err
		}
		if r.Value == nil {
			return result{}, nil
		}
		return result{value: r.Value, ok: true}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(result)
	return res.value, res.ok, nil
}

// Exists reports whether prefix+key is present, without fetching value.
func (c *Client) Exists(prefix Prefix, key string) (bool, error) {
	r, err := c.roundTrip(command{Cmd: "EXISTS", Key: string(prefix) + key})
	if err != nil {
		return false, err
	}
	return r.Exists, nil
}

// FlushAll clears the entire remote keyspace.
func (c *Client) FlushAll() error {
	_, err := c.roundTrip(command{Cmd: "FLUSHALL"})
	return err
}

