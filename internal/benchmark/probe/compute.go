package probe

import (
	"context"
	"crypto/sha256"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
)

const (
	processorRounds   = 4096
	processorBlock    = 16 * 1024
	memoryChunks      = 64
	memoryChunkSize   = 1 << 20
	memoryPageStride  = 4096
	cancelCheckStride = 64
)

// sink keeps workload results reachable so the compiler cannot drop the work.
var sink byte

// processorProbe hashes the same block repeatedly.
type processorProbe struct {
	rounds int
	block  []byte
}

func newProcessorProbe(_ Environment) (Probe, error) {
	return &processorProbe{
		rounds: processorRounds,
		block:  make([]byte, processorBlock),
	}, nil
}

func (p *processorProbe) ID() string { return catalog.ProbeProcessor }

func (p *processorProbe) Run(ctx context.Context) error {
	sum := sha256.Sum256(p.block)

	for i := 0; i < p.rounds; i++ {
		if i%cancelCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		copy(p.block, sum[:])
		sum = sha256.Sum256(p.block)
	}

	sink ^= sum[0]

	return nil
}

// memoryProbe allocates chunks and writes to every page of each one.
type memoryProbe struct {
	chunks    int
	chunkSize int
}

func newMemoryProbe(_ Environment) (Probe, error) {
	return &memoryProbe{
		chunks:    memoryChunks,
		chunkSize: memoryChunkSize,
	}, nil
}

func (p *memoryProbe) ID() string { return catalog.ProbeMemory }

func (p *memoryProbe) Run(ctx context.Context) error {
	held := make([][]byte, 0, p.chunks)

	for i := 0; i < p.chunks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk := make([]byte, p.chunkSize)
		for off := 0; off < len(chunk); off += memoryPageStride {
			chunk[off] = byte(i + off)
		}

		held = append(held, chunk)
	}

	var acc byte
	for _, chunk := range held {
		acc ^= chunk[len(chunk)-1]
	}

	sink ^= acc

	return nil
}
