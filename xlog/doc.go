// Package xlog is apt3d's structured logging wrapper. It exists so
// cache invalidation and cluster-engine heuristics warnings can be
// logged consistently without every subsystem importing zap directly.
package xlog
