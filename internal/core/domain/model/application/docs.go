// Package application contains the Application aggregate: a worker's bid on an
// order, together with its pending/accepted/rejected lifecycle.
package application
