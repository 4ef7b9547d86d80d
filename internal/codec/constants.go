package codec

// Encoded sample width of a binary32 value in bytes
const bytesSingle = 4
