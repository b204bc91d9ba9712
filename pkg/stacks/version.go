package stacks

const Version = "0.1.0"
