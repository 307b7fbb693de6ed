package main

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestServeNotReadyWhenBindFails(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	srv := &http.Server{Addr: taken.Addr().String(), Handler: http.NotFoundHandler()}
	var ready atomic.Bool
	if err := serve(context.Background(), srv, &ready, nil); err == nil {
		t.Fatal("expected bind error")
	}
	if ready.Load() {
		t.Fatal("must not report ready without a listener")
	}
}

func TestServeReadyThenDrains(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	var ready, closed atomic.Bool
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, &ready, func() { closed.Store(true) })
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !ready.Load() {
		if time.Now().After(deadline) {
			t.Fatal("server never became ready")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
	if ready.Load() {
		t.Fatal("readiness should drop on shutdown")
	}
	if !closed.Load() {
		t.Fatal("beforeShutdown was not called")
	}
}
