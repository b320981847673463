/*
Package operation wires the idchunk pipeline stages together.

	+-------------+
	|  Operation  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	| Materialize |
	| (Copy/Move) |
	+------+------+

🎯 Purpose:
- Orchestrates loading, mapping, chunking, saving, and materializing
- Owns the per-item failure policy during copy/move
- Coordinates between mapper (source of truth) and status (feedback)

🔄 Flow:
1. LoadIDs reads the identifier list
2. Map partitions it into found/missing folders
3. Chunk splits the found mappings by the configured size
4. Save writes chunk files and the combined manifest
5. Materialize copies or moves chunk folders into the destination

⚡ Key Responsibilities:
- Stage sequencing (strictly synchronous, via Runner)
- Replace-then-copy semantics for existing targets
- Collecting ItemErrors instead of aborting the chunk

🤝 Interfaces:
- Operator: the pipeline stages, one method each
- Config: operation parameters
- UserLogger: per-folder feedback during materialization

📝 Design Philosophy:
The operator is a thin coordinator over pure packages: ids, mapper, and
chunk do the work and know nothing about each other. Materialization is
deliberately not transactional; a failure mid-copy leaves a partial
target in place and is reported, not rolled back.

🔍 Example:

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	list, err := op.LoadIDs(ctx)
	res, err := op.Map(ctx, list)
	chunks, err := op.Chunk(ctx, res.Found)
	result, err := op.Materialize(ctx, chunks)
*/
package operation
