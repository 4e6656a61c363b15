// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the data encodings of the transaction script
language.

This package provides the pieces script tooling is built from rather than an
execution engine: the opcode name table, a builder that can only emit
canonical minimal data pushes, an assembler and disassembler for the textual
ASM form of a script, the variable-length signed integer ("script number")
codec used for numeric values on the stack, and the relative lock time
decoding used by OP_CHECKSEQUENCEVERIFY style opcodes.

Script numbers and data pushes both have a unique shortest valid encoding,
and accepting anything else is a consensus-grade bug in anything that later
interprets the bytes. Every entry point here therefore rejects non-minimal
forms instead of repairing them.

# Errors

Errors returned by this package are either ParseAsmError values carrying the
line and word position of the offending ASM word, or Error values with a
kind-specific ErrorCode. The script number codec additionally exposes its two
sentinel errors for use outside a script-execution context.
*/
package txscript
