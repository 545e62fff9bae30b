package packet

import (
	"bytes"
	"encoding/binary"
)

func ReadString(buf *bytes.Buffer) string {
	var length uint32
	_ = binary.Read(buf, binary.LittleEndian, &length)
	data := make([]byte, length)
	_, _ = buf.Read(data)
	return string(data)
}

func WriteString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.Write([]byte(s))
}

func ReadUint16(buf *bytes.Buffer) uint16 {
	var v uint16
	_ = binary.Read(buf, binary.LittleEndian, &v)
	return v
}

func WriteUint16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func ReadUint32(buf *bytes.Buffer) uint32 {
	var v uint32
	_ = binary.Read(buf, binary.LittleEndian, &v)
	return v
}

func WriteUint32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func ReadInt32(buf *bytes.Buffer) int32 {
	var v int32
	_ = binary.Read(buf, binary.LittleEndian, &v)
	return v
}

func WriteInt32(buf *bytes.Buffer, v int32) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}
