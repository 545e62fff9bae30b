package packet

import "bytes"

// MenuQuestion is sent by the server to present a free-form question with a
// fixed set of textual answers. Serial is exposed without the ephemeral
// namespace tag.
type MenuQuestion struct {
	Serial   uint32
	Question string
	Answers  []string
}

// ID ...
func (pk *MenuQuestion) ID() uint32 {
	return IDMenuQuestion
}

// Encode ...
func (pk *MenuQuestion) Encode(buf *bytes.Buffer) {
	WriteUint32(buf, pk.Serial)
	WriteString(buf, pk.Question)
	WriteUint32(buf, uint32(len(pk.Answers)))
	for _, answer := range pk.Answers {
		WriteString(buf, answer)
	}
}

// Decode ...
func (pk *MenuQuestion) Decode(buf *bytes.Buffer) {
	pk.Serial = ReadUint32(buf)
	pk.Question = ReadString(buf)
	pk.Answers = make([]string, ReadUint32(buf))
	for i := range pk.Answers {
		pk.Answers[i] = ReadString(buf)
	}
}
