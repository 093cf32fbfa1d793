// Package intersect reports visibility transitions between target boxes and
// a root box, in the manner of a browser's intersection observer.
//
// A Host owns every Observer of one program. The owner calls Host.Frame after
// anything that may move boxes (scrolling, resizing, new content); Frame
// measures each observed target and, for targets whose threshold bucket or
// intersecting flag changed since the last report, returns a tea.Cmd that
// delivers a ReportMsg later on the event loop. Feeding that message back
// through Host.Deliver runs the observer's callback.
//
// Reports are asynchronous and unordered across observers. A report queued
// before Observer.Disconnect is still delivered; callers that must not act on
// it after teardown keep their own guard.
package intersect
