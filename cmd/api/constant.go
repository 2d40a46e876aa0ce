package main

import "time"

const ngrokRetryInterval = 3 * time.Second
