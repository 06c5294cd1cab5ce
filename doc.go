/*
Package nbt implements the NBT binary tree format

It follows the standard Go Marshal/Unmarshal interface, and understands
the gzip, zlib and LZ4 envelopes NBT payloads are commonly wrapped in.

For more information on NBT, please see
https://wiki.vg/NBT
*/
package nbt
