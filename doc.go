// Package fsutil provides filesystem conveniences on top of the core.FS
// provider abstraction: recursive copy and delete with result accumulation,
// lazy line-oriented iteration over file contents, and small
// existence/read/write helpers.
//
// # Engines
//
// CopyAll replicates a source entry (file, directory, or symlink) under a
// destination root, reporting every path it created. Conflicts with existing
// destination entries are resolved by a caller-supplied ConflictFunc; the
// default is to overwrite. Symlinks are replicated, never traversed.
//
// RemoveAll deletes a tree bottom-up, reporting every path it removed.
// Absence is never an error: deleting a path that is already gone, or that
// disappears mid-walk, succeeds with nothing added to the result.
//
// Both engines are strictly sequential and depth-first. They check the
// context between children, so a canceled context aborts the walk at the
// next loop boundary. On failure they return the error alone, not partial
// progress; entries already copied or removed stay that way. There is no
// rollback.
//
// # Errors
//
// Failures surface as *core.OpError values recording the attempted action,
// the path (or source/destination pair), and the classified core.Kind.
// Callers inspect them with core.KindOf or the core.Is* helpers, or match
// the underlying sentinel with errors.Is. Must and Must0 convert the error
// return into a panic for script-style code.
//
// # Line Iteration
//
// LineReader turns an open handle into a pull-based, single-pass sequence
// of lines in the bufio.Scanner idiom:
//
//	lines, err := fsutil.Lines(fsys, "input.txt")
//	if err != nil {
//	    return err
//	}
//	defer lines.Close()
//	for lines.Scan() {
//	    fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil {
//	    return err
//	}
//
// The handle is closed automatically when the end of the stream is reached;
// Scan and Close stay safe to call afterwards.
package fsutil
