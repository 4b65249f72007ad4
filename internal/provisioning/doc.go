// Package provisioning implements the volume provisioning workflow as a
// strictly linear pipeline of phases. Each phase gates entry to the next;
// the first failure aborts the remaining phases and is reported with a
// structured cause on the action's result record.
//
// There is no retry, rollback, or cleanup anywhere in the pipeline: a
// failure after the create call leaves the volume in place for the operator
// to handle. The uniqueness check is also inherently racy across concurrent
// invocations (nothing coordinates two operators provisioning the same name
// at once); the window between the pre-create listing and the create call
// is a known limitation of the check-then-act protocol. Closing it would
// take a create-if-absent primitive on the cluster side, which the rbd
// surface does not offer.
package provisioning
