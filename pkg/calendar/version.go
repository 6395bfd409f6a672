package calendar

// Version is the release of the calendar package and the when-exactly CLI.
const Version = "0.6.0"
