package tree

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
)

// fingerprintKey is a fixed, process-local SipHash key. The
// fingerprint only ever needs to distinguish "this Factory's shape
// changed since the last Optimize() call" within one process's
// lifetime, never across processes or restarts, so a fixed key is
// sufficient and keeps Fingerprint deterministic for tests.
var fingerprintKey0, fingerprintKey1 = uint64(0x6274726565686173), uint64(0x68617368696e6731)

// Fingerprint returns a content hash of the factory tree's shape:
// node kinds, arities, subtree/blackboard names and each leaf
// factory's identity. Optimize uses it to decide whether a
// previously flattened shape can be reused.
//
// Fingerprint is NOT a cryptographic or cross-process identity -- two
// Factory values with identical source trees but distinct *NodeFactory
// allocations are not guaranteed to collide, since leaf factory
// identity is folded in by pointer. It only needs to detect "this
// exact Factory object is unchanged", which it does correctly.
func (f *Factory) Fingerprint() uint64 {
	h := sipState{}
	h.writeNode(f.root)
	return h.sum()
}

type sipState struct {
	buf []byte
}

func (s *sipState) writeUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *sipState) writeString(str string) {
	s.writeUint64(uint64(len(str)))
	s.buf = append(s.buf, str...)
}

func (s *sipState) writeNode(f *NodeFactory) {
	if f == nil {
		s.writeUint64(^uint64(0))
		return
	}
	s.writeUint64(uint64(f.Kind))
	s.writeString(f.SubtreeName)
	s.writeString(f.BlackboardKey)
	if f.Leaf != nil {
		s.writeString(fmt.Sprintf("leaf:%p", f.Leaf))
	} else {
		s.writeString("leaf:<nil>")
	}
	kids := f.children()
	s.writeUint64(uint64(len(kids)))
	for _, c := range kids {
		s.writeNode(c)
	}
}

func (s *sipState) sum() uint64 {
	return siphash.Hash(fingerprintKey0, fingerprintKey1, s.buf)
}
