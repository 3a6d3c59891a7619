/*
Embed writes a source file declaring the text of another file as a string
constant. It is meant to run as a build step:

	embed kernels/hot_loop.ll gen/hot_loop_ir.h hot_loop_ir

By default, the output is a C++ header:

	// Auto-generated from kernels/hot_loop.ll
	#pragma once

	namespace rufus {
	namespace embedded {

	inline const char* hot_loop_ir = R"RUFUS_xxxxxxxx(
	CONTENT
	)RUFUS_xxxxxxxx";

	} // namespace embedded
	} // namespace rufus

The xxxxxxxx part is taken from the MD5 digest of the content, so rebuilding
an unchanged file produces an identical header.

The output format, delimiter tag, namespace path and Go package name can be
set via flags. Flags must come before the positional arguments. Use -- to
end flag parsing when the input path starts with a dash:

	embed -- -generated.ll gen/ir.h ir

Asking for help, passing an unknown flag, or giving any number of positional
arguments other than three prints the usage line and exits with status 1. A read or write failure prints the
operating system error and exits with status 1.
*/
package main
