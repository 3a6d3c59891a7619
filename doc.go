/*
Package embed turns a text file into a generated source file that declares
the file's contents as a named string constant, so that a program can carry
the text in its binary instead of reading it from disk at runtime.

The default output is a C++ header with a raw string literal:

	// Auto-generated from kernels/hot_loop.ll
	#pragma once

	namespace rufus {
	namespace embedded {

	inline const char* hot_loop_ir = R"RUFUS_1a2b3c4d(
	...
	)RUFUS_1a2b3c4d";

	} // namespace embedded
	} // namespace rufus

The raw string delimiter is derived from an MD5 fingerprint of the content,
so identical input always produces identical output, and the closing
sequence never appears inside the embedded text. A Go source format is also
available.

The following subpackages contain:

	* cmd/embed - the command line tool, meant to be called from a build system.
*/
package embed
