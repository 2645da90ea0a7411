// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements a deferred, order-preserving queue between
raw pointer-device capture and once-per-frame dispatch.

Capture happens at arbitrary times outside the render loop: the host
feeds raw pointer events to Controller.Queue, which classifies each
one and buffers it. Dispatch happens once per rendered frame:
Controller.Frame drains the queue and invokes the registered callback
and observers for every buffered event, in the exact order the events
were captured, across event kinds.

High-frequency motion events are coalesced. Consecutive single-contact
drag samples captured within one undrained frame merge into one Touch
event whose offsets are the summed deltas; consecutive two-contact
samples merge into one MultiTouch event. Merging bounds the per-frame
dispatch cost; delivery of every intermediate motion sample is
deliberately not guaranteed.

The queue is single-threaded by design. The host delivers input
notifications synchronously and the frame tick is one synchronous
call, so capture and drain never overlap and no locking is needed.
*/
package input
