// Package corpus stores random-walk corpora.
//
// A corpus is a sequence of walks, each rendered as one line of vertex IDs
// separated by single spaces (the input format of word2vec-style trainers).
// Sinks receive walks one at a time:
//
//	TextWriter  buffered lines on any io.Writer (file, stdout)
//	RedisSink   lines appended to a Redis list in pipelined batches
//
// Write drains a walk sequence (such as node2vec's Walker.Walks) into a sink;
// WriteContext does the same but stops when its context is done.
// For Walker.SimulateParallel pass the sink's WriteWalk method as emit and
// call Flush afterwards.
package corpus
