// Copyright 2025 go-mpeghdec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixp

import (
	"runtime"
	"sync"
)

// Pool spreads the channels of a frame over persistent worker goroutines.
// Each channel of a frame is queued as one task; the caller returns once
// every task of its frame has run.
//
// Channels may be called from several goroutines at once and concurrently
// with Close. Each channel's buffers must be touched by only one callback
// at a time; the kernels themselves keep no state.
type Pool struct {
	// mu is held shared while a frame is being queued and exclusively by
	// Close, so no task is ever sent on a closed queue.
	mu     sync.RWMutex
	closed bool

	queue   chan task
	workers int
}

// frame is the callback and completion count of one Channels call.
type frame struct {
	decode  func(ch int)
	pending sync.WaitGroup
}

// task is one channel of a frame.
type task struct {
	f  *frame
	ch int
}

// NewPool starts a pool with the given number of workers, or GOMAXPROCS
// workers if workers <= 0.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		queue:   make(chan task, 2*workers),
		workers: workers,
	}
	for range workers {
		go p.drain()
	}
	return p
}

// drain runs queued tasks until the queue is closed and empty.
func (p *Pool) drain() {
	for t := range p.queue {
		t.f.decode(t.ch)
		t.f.pending.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once the tasks already queued have run. It may
// be called more than once. Frames submitted after Close run on the calling
// goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
}

// Channels calls fn for every channel in [0, channels) and returns when all
// calls have finished. fn must not call Channels on the same pool.
func (p *Pool) Channels(channels int, fn func(ch int)) {
	if channels <= 0 {
		return
	}
	p.mu.RLock()
	if p.closed || p.workers == 1 || channels == 1 {
		p.mu.RUnlock()
		for ch := range channels {
			fn(ch)
		}
		return
	}
	f := &frame{decode: fn}
	f.pending.Add(channels)
	for ch := range channels {
		p.queue <- task{f: f, ch: ch}
	}
	p.mu.RUnlock()
	f.pending.Wait()
}

// ToPCM runs ToPCM for every channel: dst[ch] receives src[ch].
func (p *Pool) ToPCM(dst [][]int16, src [][]int32, shift int) {
	p.Channels(min(len(dst), len(src)), func(ch int) {
		ToPCM(dst[ch], src[ch], shift)
	})
}

// ScaleValuesSaturate rescales every channel in place by its own scale
// factor.
func (p *Pool) ScaleValuesSaturate(x [][]int32, scale []int) {
	p.Channels(min(len(x), len(scale)), func(ch int) {
		ScaleValuesSaturate(x[ch], x[ch], scale[ch])
	})
}
