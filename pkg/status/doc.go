/*
Package status manages file storage and status tracking for restyle.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Track  |
	| (Storage) |           | (State) |
	+-----------+           +---------+

🎯 Purpose:
- Reads target files and writes rewritten content back atomically
- Keeps optional .bak copies before overwriting
- Records what happened to every file during a pass

🔄 Flow:
1. Operation reads a file through the Manager
2. Operation transforms the content (package text)
3. Manager writes only when the content changed
4. Manager tracks the outcome for the summary

📝 Notes:
  - Writes go through a temp file in the same directory and a rename, so a
    reader never sees a half-written file. The original mode is preserved.
  - An unchanged file is never written, its modification time stays as is.
  - Tracking is safe for concurrent use even though passes are sequential.

🔍 Example:

	mgr := status.NewManager(root, status.NewDefaultFileFormatter())

	content, err := mgr.ReadFile(ctx, "components/Header.tsx")
	...
	if err := mgr.WriteFileAtomic(ctx, "components/Header.tsx", updated); err != nil {
		...
	}
	mgr.TrackFile(ctx, status.FileInfo{Path: "components/Header.tsx", Status: status.StatusModified})
*/
package status
