// Package mwscript compiles Morrowind scripts into the game's bytecode.
//
// The output is byte-compatible with the game's own script editor: the
// same source compiled against the same game data produces the same
// bytes, so stored scripts can be verified and regenerated.
//
// # Quick Start
//
//	s, err := mwscript.Compile(source, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(s.Header())
//	os.Stdout.Write(s.Data)
//
// # Game Data
//
// Scripts refer to global variables, to objects by ID and to variables of
// scripts attached to other objects ("set fargoth.state to 1"). These
// names are resolved through the tables in [Config]:
//
//	s, err := mwscript.Compile(source, &mwscript.Config{
//	    Globals: globals, // GlobalTable
//	    Objects: objects, // ObjectTable
//	    Stderr:  os.Stderr,
//	})
//
// Without tables every non-local name is unknown and object IDs are
// written as they appear in the source.
//
// # Error Handling
//
// Errors are returned as specific types:
//   - [CompileError]: the script cannot be compiled; [IsStructural]
//     separates broken begin/end or block layout from unresolved names
//   - [VerifyError]: a stored script no longer compiles to its stored bytes
//
// Problems the compiler can work around, such as a condition without a
// comparison, are warnings and only logged.
//
// # Thread Safety
//
// Compilations share nothing but the read-only tables in [Config], which
// must be safe for concurrent reads. [CompileAll] compiles many scripts in
// parallel.
package mwscript
